package models

import (
	"time"

	"github.com/gobuffalo/pop/v6"
	"github.com/gobuffalo/validate/v3"
	"github.com/gofrs/uuid"

	"github.com/sureinsurance/sure-api/api"
)

var ValidSchemeTypes = map[api.SchemeType]struct{}{
	api.SchemeTypeIndividual: {},
	api.SchemeTypeGroup:      {},
}

type Schemes []Scheme

// Scheme is the grouping construct distinguishing individual from group-type products
type Scheme struct {
	ID         int            `db:"id"`
	Name       string         `db:"name" validate:"required"`
	SchemeType api.SchemeType `db:"scheme_type" validate:"schemeType"`
	MaxMembers int            `db:"max_members"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Validate gets run every time you call a "pop.Validate*" method.
func (s *Scheme) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(s), nil
}

func (s *Scheme) Create(tx *pop.Connection) error {
	return create(tx, s)
}

func (s *Scheme) FindByID(tx *pop.Connection, id int) error {
	return appErrorFromDB(tx.Find(s, id), api.ErrorQueryFailure)
}

type SchemeGroups []SchemeGroup

// SchemeGroup binds a policy to its scheme; created exactly once per policy and
// immutable afterwards.
type SchemeGroup struct {
	ID       uuid.UUID `db:"id"`
	SchemeID int       `db:"scheme_id"`
	PolicyID uuid.UUID `db:"policy_id"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Validate gets run every time you call a "pop.Validate*" method.
func (s *SchemeGroup) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(s), nil
}

func (s *SchemeGroup) Create(tx *pop.Connection) error {
	return create(tx, s)
}

func (s *SchemeGroup) GetID() uuid.UUID {
	return s.ID
}

func (s *SchemeGroup) FindByID(tx *pop.Connection, id uuid.UUID) error {
	return find(tx, s, id)
}
