// Package tenant provides company scoping for GORM statements.
//
// Scoping is explicit: repositories receive the company ID as an argument and
// apply CompanyScope to every statement that touches company-owned rows. The
// predicate is qualified with the statement's own table so it stays correct
// when the statement joins other tables.
//
// Usage:
//
//	db.WithContext(ctx).Scopes(tenant.CompanyScope(companyID)).Find(&orders)
//	db.WithContext(ctx).Model(&models.WorkOrderModel{}).
//		Scopes(tenant.OwnedRecord(id, companyID)).
//		Update("status", status)
package tenant

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CompanyColumn is the name of the owning company column on scoped tables
const CompanyColumn = "company_id"

// ErrCompanyIDRequired is added to a statement scoped with an empty company ID.
// The statement then fails instead of running without a tenant predicate.
var ErrCompanyIDRequired = errors.New("company_id is required for a scoped statement")

// ErrRecordIDRequired is added to a statement scoped to an empty record ID
var ErrRecordIDRequired = errors.New("record id is required for a scoped statement")

// CompanyScope restricts a statement to rows owned by companyID
func CompanyScope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if companyID == "" {
			_ = db.AddError(ErrCompanyIDRequired)
			return db
		}
		return db.Where(clause.Eq{
			Column: clause.Column{Table: clause.CurrentTable, Name: CompanyColumn},
			Value:  companyID,
		})
	}
}

// OwnedRecord restricts a statement to the single row id owned by companyID.
// Both predicates end up in the same WHERE clause, so a lookup or a write
// never matches a row of another company.
func OwnedRecord(id, companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if id == "" {
			_ = db.AddError(ErrRecordIDRequired)
			return db
		}
		db = db.Where(clause.Eq{
			Column: clause.Column{Table: clause.CurrentTable, Name: "id"},
			Value:  id,
		})
		return CompanyScope(companyID)(db)
	}
}
