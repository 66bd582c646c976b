package duty

import "github.com/google/uuid"

// Engineer is a member of the support rota. Identity is the ID; LastServed is
// the business day on which the engineer most recently covered support.
type Engineer struct {
	ID         uuid.UUID
	Name       string
	LastServed Date
}
