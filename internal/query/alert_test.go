package query

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdtan/hoso/internal/domain"
	"github.com/vdtan/hoso/internal/testutil"
)

func TestHasSecurityAlert_EmptyRecordIsClean(t *testing.T) {
	r := testutil.NewTestRecord("Nguyễn Văn An")
	assert.False(t, HasSecurityAlert(r))
}

func TestHasSecurityAlert_EachPredicateAlone(t *testing.T) {
	cases := map[string]testutil.RecordOption{
		"debt":              testutil.WithDebt(),
		"discipline":        testutil.WithDiscipline("Khiển trách"),
		"civil violation":   testutil.WithCivilViolation("Gây rối trật tự"),
		"drug use":          testutil.WithDrugUse(),
		"gambling":          testutil.WithGambling(),
		"emigrating":        testutil.WithEmigrating(),
		"overseas relative": testutil.WithOverseasRelative("Nguyễn Văn Bắc", "Đức"),
		"travel violation":  testutil.WithTravel("Lào", "Quá hạn lưu trú"),
	}
	for name, opt := range cases {
		r := testutil.NewTestRecord("Nguyễn Văn An", opt)
		assert.True(t, HasSecurityAlert(r), "%s alone should flag the record", name)
	}
}

func TestHasSecurityAlert_NonFlaggedConditions(t *testing.T) {
	// Smoking, passport and a clean travel entry are filterable dimensions
	// but not part of the alert union.
	r := testutil.NewTestRecord("Nguyễn Văn An",
		testutil.WithSmoking(),
		testutil.WithPassport(),
		testutil.WithTravel("Nhật Bản", ""),
	)
	assert.False(t, HasSecurityAlert(r))
}

func TestHasSecurityAlert_DebtSoundness(t *testing.T) {
	// Debt alone, with every other group absent, must flag.
	r := &domain.PersonnelRecord{}
	r.Detail.Finance.Debt.Flag = true
	assert.True(t, HasSecurityAlert(r))
}

func TestHasSecurityAlert_DualEncoding(t *testing.T) {
	// Both historical encodings of the drug-use flag decode to the same
	// canonical form and both trigger the alert.
	legacy := []byte(`{"vi_pham": {"ma_tuy": true}}`)
	structured := []byte(`{"vi_pham": {"ma_tuy": {"co_khong": true}}}`)

	for _, raw := range [][]byte{legacy, structured} {
		var d domain.RecordDetail
		require.NoError(t, json.Unmarshal(raw, &d))
		r := &domain.PersonnelRecord{Detail: d}
		assert.True(t, HasSecurityAlert(r), "input %s", raw)
	}
}
