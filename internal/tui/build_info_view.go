// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-portfolio-panel/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: go-portfolio-panel\n")
	b.WriteString(strings.Join(info.Lines(), "\n"))

	return renderPage("ABOUT", overlayBoxStyle.Render(b.String()), "esc/v: back")
}
