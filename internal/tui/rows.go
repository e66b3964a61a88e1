package tui

import (
	"github.com/MKhiriev/go-admin-config/models"
)

type rowKind int

const (
	rowSection rowKind = iota
	rowToggle
	rowNumber
	rowText
)

// row is one line of a configuration screen bound to a key path of the
// domain object.
type row struct {
	kind      rowKind
	label     string
	path      string
	lo, hi    int
	presets   []int
	multiline bool
}

func (r row) selectable() bool {
	return r.kind != rowSection
}

var fieldLabels = map[string]string{
	models.FieldFullName:  "Nombre completo",
	models.FieldEmail:     "Correo electrónico",
	models.FieldPhone:     "Teléfono",
	models.FieldAddress:   "Dirección",
	models.FieldBloodType: "Tipo de sangre",

	models.QRIncludePhoto:      "Incluir foto",
	models.QREmergencyContacts: "Contactos de emergencia",
	models.QRMedicalInfo:       "Información médica",
	models.QRBloodType:         "Tipo de sangre",
	models.QRAllergies:         "Alergias",
	models.QRExpiryDays:        "Días de expiración",

	models.ChannelPush:  "Notificaciones push",
	models.ChannelEmail: "Correo electrónico",
	models.ChannelSMS:   "SMS",

	models.TemplateRouteStart:     "Inicio de ruta",
	models.TemplateRouteEnd:       "Fin de ruta",
	models.TemplateSafetyAlert:    "Alerta de seguridad",
	models.TemplateSupportMessage: "Mensaje de apoyo",
	models.TemplateEmergency:      "Emergencia",

	models.KeyLegalText: "Texto legal",
}

var eventLabels = map[models.EventKind]string{
	models.EventRouteStart:     "inicio de ruta",
	models.EventRouteEnd:       "fin de ruta",
	models.EventSafetyAlert:    "alerta de seguridad",
	models.EventSupportMessage: "mensaje de apoyo",
	models.EventEmergency:      "emergencia",
}

func idCardRows() []row {
	rows := []row{{kind: rowSection, label: "Campos de la tarjeta"}}
	for _, k := range models.IDCardFieldKeys {
		label := fieldLabels[k]
		rows = append(rows,
			row{kind: rowToggle, label: label + " · visible", path: k + ".visible"},
			row{kind: rowToggle, label: label + " · obligatorio", path: k + ".obligatorio"},
			row{kind: rowNumber, label: label + " · orden", path: k + ".orden", lo: 1, hi: len(models.IDCardFieldKeys)},
		)
	}

	rows = append(rows, row{kind: rowSection, label: "Código QR"})
	for _, k := range models.QRFlagKeys {
		rows = append(rows, row{kind: rowToggle, label: fieldLabels[k], path: k})
	}
	rows = append(rows, row{
		kind:    rowNumber,
		label:   fieldLabels[models.QRExpiryDays],
		path:    models.QRExpiryDays,
		lo:      models.QRExpiryMinDays,
		hi:      models.QRExpiryMaxDays,
		presets: models.QRExpiryPresets,
	})
	return rows
}

func notificationsRows() []row {
	rows := []row{{kind: rowSection, label: "Canales"}}
	for _, ch := range models.ChannelKeys {
		label := fieldLabels[ch]
		rows = append(rows, row{kind: rowToggle, label: label + " · activo", path: ch + ".enabled"})
		for _, ev := range models.EventKinds {
			rows = append(rows, row{kind: rowToggle, label: "    " + eventLabels[ev], path: ch + "." + string(ev)})
		}
	}

	rows = append(rows, row{kind: rowSection, label: "Plantillas"})
	for _, t := range models.TemplateKeys {
		label := fieldLabels[t]
		rows = append(rows,
			row{kind: rowToggle, label: label + " · activa", path: t + ".enabled"},
			row{kind: rowText, label: label + " · asunto", path: t + ".subject"},
			row{kind: rowText, label: label + " · mensaje", path: t + ".body", multiline: true},
		)
	}

	rows = append(rows,
		row{kind: rowSection, label: "Aviso legal"},
		row{kind: rowText, label: fieldLabels[models.KeyLegalText], path: models.KeyLegalText, multiline: true},
	)
	return rows
}
