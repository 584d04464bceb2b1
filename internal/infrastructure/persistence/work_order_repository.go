package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/repairshop/backend/internal/domain/repair"
	"github.com/repairshop/backend/internal/domain/shared"
	"github.com/repairshop/backend/internal/infrastructure/persistence/models"
	"github.com/repairshop/backend/internal/infrastructure/persistence/tenant"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWorkOrderRepository implements repair.WorkOrderRepository using GORM
type GormWorkOrderRepository struct {
	db *gorm.DB
}

// NewGormWorkOrderRepository creates a new GormWorkOrderRepository
func NewGormWorkOrderRepository(db *gorm.DB) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{db: db}
}

// joined preloads every relation rendered with a work order. Related rows are
// filtered by the same company so a foreign reference renders as null.
func (r *GormWorkOrderRepository) joined(ctx context.Context, companyID string) *gorm.DB {
	scope := tenant.CompanyScope(companyID)
	return r.db.WithContext(ctx).
		Preload("Customer", scope).
		Preload("Vehicle", scope).
		Preload("Technician", scope).
		Preload("Tasks", orderByCreation).
		Preload("Parts", orderByCreation).
		Preload("Parts.InventoryItem", scope).
		Preload("Invoice", scope)
}

func orderByCreation(db *gorm.DB) *gorm.DB {
	return db.Order(clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: clause.Column{Table: clause.CurrentTable, Name: "created_at"}},
		{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}},
	}})
}

// FindAllByCompany returns every work order of the company, oldest first
func (r *GormWorkOrderRepository) FindAllByCompany(ctx context.Context, companyID string) ([]repair.WorkOrder, error) {
	var rows []models.WorkOrderModel
	if err := r.joined(ctx, companyID).
		Scopes(tenant.CompanyScope(companyID), orderByCreation).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list work orders: %w", err)
	}

	orders := make([]repair.WorkOrder, 0, len(rows))
	for i := range rows {
		orders = append(orders, *rows[i].ToDomain())
	}
	return orders, nil
}

// FindOneScoped returns the work order only when it belongs to the company
func (r *GormWorkOrderRepository) FindOneScoped(ctx context.Context, id, companyID string) (*repair.WorkOrder, error) {
	var row models.WorkOrderModel
	if err := r.joined(ctx, companyID).
		Scopes(tenant.OwnedRecord(id, companyID)).
		Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Work order not found")
		}
		return nil, fmt.Errorf("failed to load work order: %w", err)
	}
	return row.ToDomain(), nil
}

// ExistsScoped reports whether the work order exists within the company
func (r *GormWorkOrderRepository) ExistsScoped(ctx context.Context, id, companyID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.WorkOrderModel{}).
		Scopes(tenant.OwnedRecord(id, companyID)).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check work order: %w", err)
	}
	return count > 0, nil
}

// CreateWithNested inserts the order with its tasks and parts in one transaction
func (r *GormWorkOrderRepository) CreateWithNested(ctx context.Context, order *repair.WorkOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureReferencesOwned(tx, order); err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(models.WorkOrderModelFromDomain(order)).Error; err != nil {
			return translateWriteError("failed to create work order", err)
		}

		if len(order.Tasks) > 0 {
			tasks := make([]*models.TaskModel, 0, len(order.Tasks))
			for i := range order.Tasks {
				tasks = append(tasks, models.TaskModelFromDomain(&order.Tasks[i]))
			}
			if err := tx.Create(&tasks).Error; err != nil {
				return translateWriteError("failed to create tasks", err)
			}
		}

		for i := range order.Parts {
			part := models.WorkOrderPartModelFromDomain(&order.Parts[i])
			if err := tx.Omit(clause.Associations).Create(part).Error; err != nil {
				return translateWriteError("failed to create part", err)
			}
		}
		return nil
	})
}

// ensureReferencesOwned rejects customer, vehicle and technician ids that are
// unknown to the order's company.
func ensureReferencesOwned(tx *gorm.DB, order *repair.WorkOrder) error {
	refs := []struct {
		model any
		id    string
		msg   string
	}{
		{&models.CustomerModel{}, order.CustomerID, "Customer not found"},
		{&models.VehicleModel{}, order.VehicleID, "Vehicle not found"},
		{&models.UserModel{}, order.TechnicianID, "Technician not found"},
	}
	for _, ref := range refs {
		var count int64
		if err := tx.Model(ref.model).
			Scopes(tenant.OwnedRecord(ref.id, order.CompanyID)).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check work order references: %w", err)
		}
		if count == 0 {
			return shared.NewValidationError(ref.msg)
		}
	}
	return nil
}

// UpdateStatus changes the status with one statement scoped by id and company.
// Zero affected rows means the order is absent or owned by another company.
func (r *GormWorkOrderRepository) UpdateStatus(ctx context.Context, id, companyID string, status repair.WorkOrderStatus) (*repair.WorkOrder, error) {
	result := r.db.WithContext(ctx).
		Model(&models.WorkOrderModel{}).
		Scopes(tenant.OwnedRecord(id, companyID)).
		Update("status", string(status))
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update work order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, shared.NewNotFoundError("Work order not found")
	}
	return r.FindOneScoped(ctx, id, companyID)
}

// AppendTask inserts a task for an ownership-verified work order
func (r *GormWorkOrderRepository) AppendTask(ctx context.Context, task *repair.Task) error {
	if err := r.db.WithContext(ctx).Create(models.TaskModelFromDomain(task)).Error; err != nil {
		return translateWriteError("failed to create task", err)
	}
	return nil
}

// AppendParts inserts the batch atomically; a failing row rolls back the rest
func (r *GormWorkOrderRepository) AppendParts(ctx context.Context, parts []repair.WorkOrderPart) error {
	if len(parts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range parts {
			if err := tx.Omit(clause.Associations).Create(models.WorkOrderPartModelFromDomain(&parts[i])).Error; err != nil {
				return translateWriteError("failed to create part", err)
			}
		}
		return nil
	})
}

// SQLSTATE codes the gorm postgres dialector leaves untranslated
const (
	pgStringDataRightTruncation = "22001"
	pgNumericValueOutOfRange    = "22003"
)

// translateWriteError maps constraint violations reported by the store to
// domain validation errors and wraps everything else.
func translateWriteError(msg string, err error) error {
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pgErr) && pgErr.Code == pgStringDataRightTruncation:
		return shared.NewValidationError("Value is too long")
	case errors.As(err, &pgErr) && pgErr.Code == pgNumericValueOutOfRange:
		return shared.NewValidationError("Number is out of range")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return shared.NewValidationError("Referenced record does not exist")
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return shared.NewValidationError("Quantity must be positive")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", msg, shared.ErrAlreadyExists)
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}

// Ensure GormWorkOrderRepository implements repair.WorkOrderRepository
var _ repair.WorkOrderRepository = (*GormWorkOrderRepository)(nil)
