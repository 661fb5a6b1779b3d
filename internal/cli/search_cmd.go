package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vdtan/hoso/internal/cli/formatter"
	"github.com/vdtan/hoso/internal/domain"
	"github.com/vdtan/hoso/internal/query"
	"github.com/vdtan/hoso/internal/service"
)

// criteriaFlags shares the filter flag set between search, export and
// browse. Every flag accepts "all" (or stays empty) to impose no
// constraint.
type criteriaFlags struct {
	keyword, unit, rank        string
	political, education       string
	marital, children          string
	ethnicity, religion        string
	age, security              string
	business, health, overseas string
}

func (f *criteriaFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.keyword, "keyword", "k", "", "Match name, alternate name, CCCD, or phone")
	cmd.Flags().StringVar(&f.unit, "unit", "", "Unit (ID, ID prefix, or name); includes sub-units")
	cmd.Flags().StringVar(&f.rank, "rank", "", "Exact rank")
	cmd.Flags().StringVar(&f.political, "political", "", "dang_vien|doan_vien|quan_chung")
	cmd.Flags().StringVar(&f.education, "education", "", "dai_hoc|duoi_dai_hoc|tot_nghiep")
	cmd.Flags().StringVar(&f.marital, "marital", "", "da_ket_hon|doc_than|co_nguoi_yeu")
	cmd.Flags().StringVar(&f.children, "children", "", "co_con")
	cmd.Flags().StringVar(&f.ethnicity, "ethnicity", "", "kinh|thieu_so")
	cmd.Flags().StringVar(&f.religion, "religion", "", "co_ton_giao")
	cmd.Flags().StringVar(&f.age, "age", "", "18-25|26-30|31-40|40+")
	cmd.Flags().StringVar(&f.security, "security", "", "canh_bao|no_xau|ky_luat|vi_pham|ma_tuy|co_bac|thuoc_la|yeu_to_nuoc_ngoai|ho_chieu")
	cmd.Flags().StringVar(&f.business, "business", "", "kinh_doanh|dau_tu")
	cmd.Flags().StringVar(&f.health, "health", "", "loai_1|loai_2|loai_3|loai_4_5")
	cmd.Flags().StringVar(&f.overseas, "overseas", "", "da_di_nuoc_ngoai|dang_xuat_canh")
}

// criteria materializes the flag values, resolving the unit reference.
func (f *criteriaFlags) criteria(ctx context.Context, app *App) (domain.FilterCriteria, error) {
	c := domain.FilterCriteria{
		Keyword:     f.keyword,
		Rank:        f.rank,
		Political:   f.political,
		Education:   f.education,
		Marital:     f.marital,
		HasChildren: f.children,
		Ethnicity:   f.ethnicity,
		Religion:    f.religion,
		AgeBucket:   f.age,
		Security:    f.security,
		Business:    f.business,
		Health:      f.health,
		Overseas:    f.overseas,
	}
	if f.unit != "" && f.unit != domain.FilterAll {
		unitID, err := resolveUnitID(ctx, app, f.unit)
		if err != nil {
			return c, err
		}
		c.UnitID = unitID
	}
	return c, nil
}

// sortValue is a pflag.Value so cobra rejects invalid sort orders at parse
// time.
type sortValue query.SortBy

var _ pflag.Value = (*sortValue)(nil)

func (v *sortValue) String() string {
	if *v == "" {
		return "recent"
	}
	return string(*v)
}

func (v *sortValue) Set(s string) error {
	switch s {
	case "", "recent":
		*v = sortValue(query.SortByRecent)
	case "name":
		*v = sortValue(query.SortByName)
	case "age":
		*v = sortValue(query.SortByAge)
	case "enlistment":
		*v = sortValue(query.SortByEnlistment)
	default:
		return fmt.Errorf("invalid sort %q (recent|name|age|enlistment)", s)
	}
	return nil
}

func (v *sortValue) Type() string { return "sort" }

func newSearchCmd(app *App) *cobra.Command {
	var flags criteriaFlags
	var sortFlag sortValue
	var unlimited bool

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search records by filter criteria",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			c, err := flags.criteria(ctx, app)
			if err != nil {
				return err
			}

			records, err := app.Search.Search(ctx, c, service.SearchOptions{
				SortBy:    query.SortBy(sortFlag),
				Unlimited: unlimited,
			})
			if err != nil {
				return err
			}

			if len(records) == 0 {
				fmt.Println("Không tìm thấy hồ sơ nào.")
				return nil
			}

			fmt.Print(formatter.FormatRecordList(records, time.Now()))
			if !unlimited && len(records) == query.ResultCap {
				fmt.Println(formatter.Dim(fmt.Sprintf("Hiển thị %d kết quả đầu tiên; dùng --unlimited để xem tất cả.", query.ResultCap)))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().Var(&sortFlag, "sort", "Sort order (recent|name|age|enlistment)")
	cmd.Flags().BoolVar(&unlimited, "unlimited", false, "Skip the result cap")

	return cmd
}
