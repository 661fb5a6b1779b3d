package importer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vdtan/hoso/internal/db"
	"github.com/vdtan/hoso/internal/repository"
)

// SkipReport records one rejected entry so the caller can show the user
// what was dropped and why.
type SkipReport struct {
	Index  int
	Name   string
	Errors []error
}

// Result summarizes a completed import run.
type Result struct {
	UnitsCreated int
	Imported     int
	Skipped      []SkipReport
}

// Importer loads a bulk-import file and persists it inside one transaction.
// Invalid records are skipped and reported; unit errors abort the run
// because records resolve their unit by ref.
type Importer struct {
	uow db.UnitOfWork
}

// NewImporter creates an Importer over the given transactional boundary.
func NewImporter(uow db.UnitOfWork) *Importer {
	return &Importer{uow: uow}
}

// Run imports the file at path. Either everything valid lands, or nothing
// does.
func (im *Importer) Run(ctx context.Context, path string) (*Result, error) {
	schema, err := LoadImportSchema(path)
	if err != nil {
		return nil, err
	}
	return im.RunSchema(ctx, schema)
}

// RunSchema imports an already-loaded schema.
func (im *Importer) RunSchema(ctx context.Context, schema *ImportSchema) (*Result, error) {
	unitRefs, unitErrs := ValidateUnits(schema.Units)
	if len(unitErrs) > 0 {
		return nil, fmt.Errorf("invalid don_vi entries: %w", errors.Join(unitErrs...))
	}

	now := time.Now().UTC()
	units, refMap := ConvertUnits(schema.Units, now)

	unitNames := make(map[string]string, len(units))
	for _, u := range units {
		unitNames[u.ID] = u.Name
	}

	result := &Result{}

	err := im.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		unitRepo := repository.NewSQLiteUnitRepo(tx)
		recordRepo := repository.NewSQLiteRecordRepo(tx)

		for _, u := range units {
			if err := unitRepo.Create(ctx, u); err != nil {
				return fmt.Errorf("creating unit %q: %w", u.Name, err)
			}
			result.UnitsCreated++
		}

		for i := range schema.Records {
			r := &schema.Records[i]
			if errs := ValidateRecord(i, r, unitRefs); len(errs) > 0 {
				result.Skipped = append(result.Skipped, SkipReport{
					Index:  i,
					Name:   r.FullName,
					Errors: errs,
				})
				continue
			}
			rec := ConvertRecord(r, refMap, unitNames, now)
			if err := recordRepo.Create(ctx, rec); err != nil {
				return fmt.Errorf("creating record %q: %w", rec.FullName, err)
			}
			result.Imported++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
