/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"strconv"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/riskboard/dashboard"
)

type filterForm struct {
	AgeMin        string
	AgeMax        string
	Risk          string
	DischargeFrom string
	DischargeTo   string
}

func newFilterForm(f dashboard.FilterState) filterForm {
	return filterForm{
		AgeMin:        strconv.FormatFloat(f.AgeMin, 'f', -1, 64),
		AgeMax:        strconv.FormatFloat(f.AgeMax, 'f', -1, 64),
		Risk:          string(f.Risk),
		DischargeFrom: formatDateInput(f.DischargeFrom),
		DischargeTo:   formatDateInput(f.DischargeTo),
	}
}

func riskOptions() []string {
	options := []string{string(dashboard.RiskAll)}
	for _, tier := range dashboard.AllTiers {
		options = append(options, string(tier))
	}

	return options
}

func populateListData(data template.Data, list dashboard.ListState) {
	pagination := list.Pagination()

	data["Patients"] = list.Displayed()
	data["Pagination"] = pagination
	data["PageButtons"] = pagination.Buttons()
	data["ActivePage"] = pagination.ActivePage()
	data["HasPrevious"] = pagination.HasPrevious()
	data["HasNext"] = pagination.HasNext()
	data["FilterForm"] = newFilterForm(list.Filters())
	data["FiltersActive"] = !list.Filters().IsDefault()
	data["RiskOptions"] = riskOptions()
	data["SortAge"] = string(list.Sort().Direction(dashboard.SortAge))
	data["SortRisk"] = string(list.Sort().Direction(dashboard.SortRisk))
	data["ActiveSort"] = string(list.Sort().Active)
	data["MatchingCount"] = len(list.Current())
	data["TotalCount"] = len(list.Original())
}

// PatientList renders the discharge population list. Filter values in the
// query string are applied on top of the saved view.
func PatientList(c flamego.Context, s session.Session, t template.Template, data template.Data, src dashboard.Source) {
	setPageTitle(data, "Discharge Population")
	data["IsPatients"] = true

	list, err := dashboard.LoadList(c.Request().Context(), src, loadViewState(s))
	if err != nil {
		logger.Error("Failed to load patients", "error", err)
		data["Error"] = errDataUnavailable.Error()
		t.HTML(http.StatusBadGateway, "patients")
		return
	}

	if query := c.Request().URL.Query(); hasFilterValues(query) {
		filters, err := parseFilterValues(query)
		if err != nil {
			data["Error"] = err.Error()
		} else {
			list = list.ApplyFilters(filters)
			saveViewState(s, list.View())
		}
	}

	populateListData(data, list)
	t.HTML(http.StatusOK, "patients")
}

// mutateList rebuilds the saved list view, applies mutate and stores the
// result before returning to the list.
func mutateList(c flamego.Context, s session.Session, src dashboard.Source, mutate func(dashboard.ListState) (dashboard.ListState, error)) {
	list, err := dashboard.LoadList(c.Request().Context(), src, loadViewState(s))
	if err != nil {
		logger.Error("Failed to load patients", "error", err)
		SetErrorFlash(s, errDataUnavailable.Error())
		c.Redirect("/", http.StatusSeeOther)
		return
	}

	next, err := mutate(list)
	if err != nil {
		SetErrorFlash(s, err.Error())
		c.Redirect("/", http.StatusSeeOther)
		return
	}

	saveViewState(s, next.View())
	c.Redirect("/", http.StatusSeeOther)
}

// ApplyFilterForm applies the submitted filters and returns to page 1.
func ApplyFilterForm(c flamego.Context, s session.Session, src dashboard.Source) {
	if err := c.Request().ParseForm(); err != nil {
		logger.Warn("Failed to parse filter form", "error", err)
		SetErrorFlash(s, "Failed to parse form")
		c.Redirect("/", http.StatusSeeOther)
		return
	}

	filters, err := parseFilterValues(c.Request().Form)
	if err != nil {
		SetErrorFlash(s, err.Error())
		c.Redirect("/", http.StatusSeeOther)
		return
	}

	mutateList(c, s, src, func(list dashboard.ListState) (dashboard.ListState, error) {
		return list.ApplyFilters(filters), nil
	})
}

// ClearFilterForm restores the unfiltered list.
func ClearFilterForm(c flamego.Context, s session.Session, src dashboard.Source) {
	mutateList(c, s, src, func(list dashboard.ListState) (dashboard.ListState, error) {
		return list.ClearFilters(), nil
	})
}

// ToggleSortColumn flips the sort direction of a column.
func ToggleSortColumn(c flamego.Context, s session.Session, src dashboard.Source) {
	col, err := dashboard.ParseSortColumn(c.Param("column"))
	if err != nil {
		SetErrorFlash(s, err.Error())
		c.Redirect("/", http.StatusSeeOther)
		return
	}

	mutateList(c, s, src, func(list dashboard.ListState) (dashboard.ListState, error) {
		return list.ToggleSort(col), nil
	})
}

// GoToPage moves to a numbered page, or to the next or previous page.
func GoToPage(c flamego.Context, s session.Session, src dashboard.Source) {
	target := c.Param("n")

	mutateList(c, s, src, func(list dashboard.ListState) (dashboard.ListState, error) {
		switch target {
		case "next":
			return list.NextPage(), nil
		case "previous", "prev":
			return list.PreviousPage(), nil
		}

		page, err := strconv.Atoi(target)
		if err != nil || page < 1 || page > max(1, list.Pagination().TotalPages) {
			return list, errInvalidPage
		}

		return list.GoToPage(page), nil
	})
}

// PatientDetails shows a patient next to the distributions of the
// reference cohort.
func PatientDetails(c flamego.Context, t template.Template, data template.Data, src dashboard.Source) {
	setPageTitle(data, "Readmission Risk Results")
	data["IsPatients"] = true

	admissionID, err := parseAdmissionID(c.Param("admissionId"))
	if err != nil {
		data["Message"] = err.Error()
		t.HTML(http.StatusBadRequest, "error")
		return
	}

	view := dashboard.LoadDetailView(c.Request().Context(), src, admissionID, dashboard.NewAgeBucketer())
	if view.NotFound() {
		data["Message"] = "No patient found for admission " + strconv.FormatInt(admissionID, 10)
		t.HTML(http.StatusNotFound, "error")
		return
	}

	if view.Err != nil {
		logger.Error("Failed to load patient details", "admission_id", admissionID, "error", view.Err)
	}

	data["Patient"] = view.Patient
	data["ErrorMessage"] = view.ErrorMessage
	data["AgeChartError"] = view.AgeChartError

	charts := []struct {
		key   string
		title string
		opts  *dashboard.ChartOptions
	}{
		{key: "SeverityChart", title: "Comorbidity Severity", opts: view.Severity},
		{key: "MortalityChart", title: "Comorbidity Mortality", opts: view.Mortality},
		{key: "AgeChart", title: "Age", opts: view.Age},
	}

	for _, ch := range charts {
		if ch.opts == nil {
			continue
		}

		html, err := renderChart(*ch.opts, ch.title)
		if err != nil {
			logger.Error("Failed to render chart", "chart", ch.title, "error", err)
			continue
		}

		data[ch.key] = html
	}

	t.HTML(http.StatusOK, "patient_details")
}

// ReadmissionRates shows the 30-day readmission trend.
func ReadmissionRates(c flamego.Context, t template.Template, data template.Data, src dashboard.Source) {
	setPageTitle(data, "30 Day Re-Admission Rates")
	data["IsReadmissions"] = true

	chart, err := dashboard.LoadTrend(c.Request().Context(), src)
	if err != nil {
		logger.Error("Failed to load readmission data", "error", err)
		data["ErrorMessage"] = err.Error()
		t.HTML(http.StatusOK, "readmission_rates")
		return
	}

	html, err := renderChart(chart, "30 Day Re-Admission Rate")
	if err != nil {
		logger.Error("Failed to render readmission chart", "error", err)
		data["ErrorMessage"] = err.Error()
	} else {
		data["TrendChart"] = html
	}

	t.HTML(http.StatusOK, "readmission_rates")
}
