package studio

import (
	"github.com/zenflowhq/zenflow/core"
)

// Profile is a singleton; exactly one instance exists per deployment and it
// is replaced wholesale on update.
type Profile struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Website     string `json:"website" validate:"omitempty,url"`
	Description string `json:"description"`
}

func (p *Profile) Validate() error {
	p.Name = core.CleanString(p.Name)
	p.Email = core.CleanString(p.Email, true /* lower */)
	return core.Validate.Struct(p)
}
