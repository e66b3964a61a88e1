// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared user-facing message strings of the
// configuration server and the admin console.
//
// Server Msg* constants travel in the "message" field of the API envelope.
// Console Msg* constants are shown as notices after save, reset and copy
// actions. The wording follows the Spanish admin console.
package app

// Server envelope messages.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "datos inválidos"

	// MsgNoDomainSupplied is returned by PUT when the body names no domain.
	MsgNoDomainSupplied = "no se envió ningún dominio de configuración"

	// MsgInvalidDomain is returned for a domain other than idCardConfig or
	// notificationsConfig.
	MsgInvalidDomain = "dominio de configuración desconocido"

	// MsgInvalidPayload is returned when a domain payload is not an object.
	MsgInvalidPayload = "la configuración debe ser un objeto JSON"

	// MsgInvalidField is returned when a field patch names no valid
	// "<domain>.<path>".
	MsgInvalidField = "campo de configuración inválido"

	// MsgInvalidPatch is returned when the patch value does not fit the
	// target field.
	MsgInvalidPatch = "el valor no corresponde al campo"

	// MsgInvalidResetScope is returned for a "tipo" outside todo, idCard and
	// notifications.
	MsgInvalidResetScope = "tipo de reinicio inválido"

	MsgNotFound            = "recurso no encontrado"
	MsgInternalServerError = "error interno del servidor"
)

// Console notices.
const (
	MsgIDCardSaved        = "Configuración de Tarjeta ID guardada correctamente"
	MsgNotificationsSaved = "Configuración de Notificaciones guardada correctamente"

	// MsgSaveErrorPrefix prefixes the server message of a rejected save.
	MsgSaveErrorPrefix = "Error: "
	// MsgSaveFallback replaces an empty server message.
	MsgSaveFallback = "No se pudo guardar la configuración"
	// MsgConnectionError is shown when the save never reached the server.
	MsgConnectionError = "Error de conexión con el servidor"

	MsgConfigReset = "Configuración restablecida a los valores por defecto"
	MsgCopied      = "Copiado al portapapeles"
)
