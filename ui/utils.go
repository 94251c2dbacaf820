package ui

import (
	"net/http"
	"strconv"
	"strings"

	"spacexdash/domain/launch"
	"spacexdash/internal/errors"
	"spacexdash/ui/services"
)

// Query parameter names shared by both routers.
const (
	paramSite       = "site"
	paramPayloadMin = "payload_min"
	paramPayloadMax = "payload_max"
)

// parsePayload reads one slider bound, falling back to def when absent.
func parsePayload(name, raw string, def float64) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.InvalidInput(name + " must be a number")
	}
	if v < 0 {
		return 0, errors.InvalidInput(name + " must not be negative")
	}
	return v, nil
}

// parseSelection turns query values into a site choice and payload range.
// Missing bounds default to the slider's initial value.
func parseSelection(svc *services.DataService, get func(string) string) (launch.SiteChoice, launch.PayloadRange, error) {
	site, err := svc.ParseSite(get(paramSite))
	if err != nil {
		return launch.SiteChoice{}, launch.PayloadRange{}, err
	}
	def := svc.DefaultRange()
	lower, err := parsePayload(paramPayloadMin, get(paramPayloadMin), def.Lower)
	if err != nil {
		return launch.SiteChoice{}, launch.PayloadRange{}, err
	}
	upper, err := parsePayload(paramPayloadMax, get(paramPayloadMax), def.Upper)
	if err != nil {
		return launch.SiteChoice{}, launch.PayloadRange{}, err
	}
	return site, launch.PayloadRange{Lower: lower, Upper: upper}, nil
}

// errorStatus maps an application error to an HTTP status.
func errorStatus(err error) int {
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput:
		return http.StatusBadRequest
	case errors.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// errorBody is the JSON error payload.
func errorBody(err error) map[string]string {
	return map[string]string{"error": err.Error(), "code": errors.GetCode(err)}
}

const (
	exportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportDisposition = `attachment; filename="launches.xlsx"`
)
