package models

import (
	"encoding/json"
	"slices"
)

// ID-card field keys as they appear on the wire.
const (
	FieldFullName  = "nombreCompleto"
	FieldEmail     = "email"
	FieldPhone     = "telefono"
	FieldAddress   = "direccion"
	FieldBloodType = "tipoSangre"
)

// QR option keys. They sit flat on the ID-card object next to the fields.
const (
	QRIncludePhoto      = "qrIncluirFoto"
	QREmergencyContacts = "qrContactosEmergencia"
	QRMedicalInfo       = "qrInfoMedica"
	QRBloodType         = "qrTipoSangre"
	QRAllergies         = "qrAlergias"
	QRExpiryDays        = "qrDiasExpiracion"
)

// Bounds of the QR expiry slider.
const (
	QRExpiryMinDays = 1
	QRExpiryMaxDays = 90
)

// IDCardFieldKeys is the canonical field order. It breaks ties when fields
// share the same display order.
var IDCardFieldKeys = []string{FieldFullName, FieldEmail, FieldPhone, FieldAddress, FieldBloodType}

// QRFlagKeys lists the boolean QR options (expiry excluded).
var QRFlagKeys = []string{QRIncludePhoto, QREmergencyContacts, QRMedicalInfo, QRBloodType, QRAllergies}

// QRExpiryPresets are the quick-pick expiry values offered next to the slider.
var QRExpiryPresets = []int{7, 30, 90}

// FieldSpec describes how one personal-data field appears on the card.
type FieldSpec struct {
	Visible  bool `json:"visible"`
	Required bool `json:"obligatorio"`
	Order    int  `json:"orden"`
}

// QRConfig holds the QR code options of the identity card.
type QRConfig struct {
	IncludePhoto      bool `json:"qrIncluirFoto"`
	EmergencyContacts bool `json:"qrContactosEmergencia"`
	MedicalInfo       bool `json:"qrInfoMedica"`
	BloodType         bool `json:"qrTipoSangre"`
	Allergies         bool `json:"qrAlergias"`
	ExpiryDays        int  `json:"qrDiasExpiracion"`
}

// Flags returns the boolean options keyed by wire name.
func (q QRConfig) Flags() map[string]bool {
	return map[string]bool{
		QRIncludePhoto:      q.IncludePhoto,
		QREmergencyContacts: q.EmergencyContacts,
		QRMedicalInfo:       q.MedicalInfo,
		QRBloodType:         q.BloodType,
		QRAllergies:         q.Allergies,
	}
}

// IDCardConfig is the identity-card configuration domain.
//
// Keys the model does not know are kept in Extra and written back on encode,
// so a round trip through the console never loses server-side data.
type IDCardConfig struct {
	FullName  FieldSpec `json:"nombreCompleto"`
	Email     FieldSpec `json:"email"`
	Phone     FieldSpec `json:"telefono"`
	Address   FieldSpec `json:"direccion"`
	BloodType FieldSpec `json:"tipoSangre"`
	QRConfig

	Extra map[string]json.RawMessage `json:"-"`
}

// NamedField pairs a FieldSpec with its wire key.
type NamedField struct {
	Key  string
	Spec FieldSpec
}

// Fields returns the five fields in canonical order.
func (c IDCardConfig) Fields() []NamedField {
	return []NamedField{
		{FieldFullName, c.FullName},
		{FieldEmail, c.Email},
		{FieldPhone, c.Phone},
		{FieldAddress, c.Address},
		{FieldBloodType, c.BloodType},
	}
}

// SortedFields returns the fields ordered by Order. Equal orders keep the
// canonical order.
func (c IDCardConfig) SortedFields() []NamedField {
	fields := c.Fields()
	slices.SortStableFunc(fields, func(a, b NamedField) int {
		return a.Spec.Order - b.Spec.Order
	})
	return fields
}

// Field looks a field up by wire key.
func (c IDCardConfig) Field(key string) (FieldSpec, bool) {
	for _, f := range c.Fields() {
		if f.Key == key {
			return f.Spec, true
		}
	}
	return FieldSpec{}, false
}

// Clone returns a deep copy.
func (c IDCardConfig) Clone() IDCardConfig {
	c.Extra = cloneExtra(c.Extra)
	return c
}

// IDCardKeys returns every top-level key the model knows.
func IDCardKeys() []string {
	keys := slices.Clone(IDCardFieldKeys)
	keys = append(keys, QRFlagKeys...)
	return append(keys, QRExpiryDays)
}

func (c IDCardConfig) MarshalJSON() ([]byte, error) {
	type alias IDCardConfig
	return marshalWithExtra(alias(c), c.Extra)
}

func (c *IDCardConfig) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	type alias IDCardConfig
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	extra, err := unknownKeys(data, IDCardKeys())
	if err != nil {
		return err
	}
	*c = IDCardConfig(a)
	c.Extra = extra
	return nil
}
