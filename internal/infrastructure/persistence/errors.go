package persistence

import (
	"errors"

	"github.com/alshbh/storefront/internal/domain/shared"
	"gorm.io/gorm"
)

// translateError maps GORM sentinel errors onto domain errors.
// The connection must be opened with TranslateError so drivers report
// unique violations as gorm.ErrDuplicatedKey.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return shared.ErrAlreadyExists
	default:
		return err
	}
}

// domainRow is a table model M that converts into domain type D
type domainRow[D, M any] interface {
	*M
	ToDomain() *D
}

// findOne loads the first row matched by q
func findOne[D, M any, PM domainRow[D, M]](q *gorm.DB) (*D, error) {
	var row M
	if err := q.First(&row).Error; err != nil {
		return nil, translateError(err)
	}
	return PM(&row).ToDomain(), nil
}

// findAll loads every row matched by q, in the order q sets
func findAll[D, M any, PM domainRow[D, M]](q *gorm.DB) ([]D, error) {
	var rows []M
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]D, len(rows))
	for i := range rows {
		out[i] = *PM(&rows[i]).ToDomain()
	}
	return out, nil
}

// deleteWhere removes the rows of model matched by the condition and
// reports shared.ErrNotFound when there were none
func deleteWhere(tx *gorm.DB, model any, cond string, args ...any) error {
	result := tx.Where(cond, args...).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
