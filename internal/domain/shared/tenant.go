package shared

import "strings"

// TenantContext is the resolved identity a request acts for. Every
// repository and service call that touches tenant data receives one
// explicitly; nothing reads it from ambient request state.
type TenantContext struct {
	CompanyID string
	UserID    string
}

// NewTenantContext builds a TenantContext and rejects an empty company.
func NewTenantContext(companyID, userID string) (TenantContext, error) {
	tc := TenantContext{
		CompanyID: strings.TrimSpace(companyID),
		UserID:    strings.TrimSpace(userID),
	}
	if err := tc.Validate(); err != nil {
		return TenantContext{}, err
	}
	return tc, nil
}

// Validate returns ErrTenantRequired when no company is set.
func (t TenantContext) Validate() error {
	if t.CompanyID == "" {
		return ErrTenantRequired
	}
	return nil
}
