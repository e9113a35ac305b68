package admin

import (
	"strings"

	"benefitd/pkg/domain"
)

// TransferRequest is the body of every PUT /{module}/admin call.
type TransferRequest struct {
	NewAdmin string `json:"new_admin"`
}

func (r *TransferRequest) Validate() error {
	r.NewAdmin = strings.TrimSpace(r.NewAdmin)
	_, err := domain.ParsePrincipal(r.NewAdmin)
	return err
}

// Next returns the validated successor.
func (r *TransferRequest) Next() domain.Principal {
	return domain.Principal(r.NewAdmin)
}
