/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"os"
	"strings"

	"github.com/flamego/template"
)

const (
	defaultSiteTitle = "Readmission Risk"
	siteTitleEnvVar  = "SITE_TITLE"
)

func siteTitle() string {
	title := strings.TrimSpace(os.Getenv(siteTitleEnvVar))
	if title == "" {
		return defaultSiteTitle
	}

	return title
}

func setPageTitle(data template.Data, page string) {
	data["SiteTitle"] = siteTitle()

	if page == "" {
		data["PageTitle"] = siteTitle()
		return
	}

	data["PageTitle"] = page + " - " + siteTitle()
}
