package loader

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

// buildFunc turns one raw record into a persistable model, resolving the
// brand through the shared per-batch cache.
type buildFunc func(tx *gorm.DB, cache BrandCache, raw RawRecord) (any, error)

// loadBatch stages every record of a dataset inside a single transaction.
// A ValidationError skips the record and is reported; any other error
// (store failure, brand resolution failure) aborts the transaction and
// rolls back everything staged so far.
func loadBatch(db *gorm.DB, category string, records []RawRecord, build buildFunc) (*Report, error) {
	report := &Report{}

	err := db.Transaction(func(tx *gorm.DB) error {
		cache := BrandCache{}
		for i, raw := range records {
			record, err := build(tx, cache, raw)
			if err != nil {
				var verr *ValidationError
				if errors.As(err, &verr) {
					log.Printf("Skipping %s record %d: %v", category, i, verr)
					report.skip(i, verr)
					continue
				}
				return err
			}
			if err := tx.Create(record).Error; err != nil {
				return err
			}
			report.Added++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Loaded %s: %s", category, report)
	return report, nil
}
