// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-admin-config/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Aplicación: consola de configuración\n")
	b.WriteString("Versión: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n")
	b.WriteString("Fecha: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(info.BuildCommit())

	return renderPage(titleStyle.Render("INFORMACIÓN DE LA APLICACIÓN"), b.String(), "esc: volver")
}
