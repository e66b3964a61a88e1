package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/internal/utils"
	"github.com/MKhiriev/go-admin-config/models"
)

const maxBodyBytes = 1 << 20

var errInvalidJSON = errors.New("invalid JSON was passed")

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.services.ConfigService.GetGlobalConfig(r.Context())
	h.respond(w, r, "*Handler.getConfig", cfg, err)
}

func (h *Handler) putConfig(w http.ResponseWriter, r *http.Request) {
	var update models.GlobalConfig
	if err := decodeBody(w, r, &update); err != nil {
		h.respond(w, r, "*Handler.putConfig", models.GlobalConfig{}, err)
		return
	}

	cfg, err := h.services.ConfigService.UpdateConfig(r.Context(), update)
	h.respond(w, r, "*Handler.putConfig", cfg, err)
}

func (h *Handler) patchConfigField(w http.ResponseWriter, r *http.Request) {
	var req models.FieldPatchRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.respond(w, r, "*Handler.patchConfigField", models.GlobalConfig{}, err)
		return
	}

	cfg, err := h.services.ConfigService.UpdateField(r.Context(), req)
	h.respond(w, r, "*Handler.patchConfigField", cfg, err)
}

func (h *Handler) resetConfig(w http.ResponseWriter, r *http.Request) {
	var req models.ResetRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.respond(w, r, "*Handler.resetConfig", models.GlobalConfig{}, err)
		return
	}

	cfg, err := h.services.ConfigService.Reset(r.Context(), req)
	h.respond(w, r, "*Handler.resetConfig", cfg, err)
}

// respond writes cfg inside a success envelope, or the failure envelope
// matching err.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, funcName string, cfg models.GlobalConfig, err error) {
	log := logger.FromRequest(r)

	if err != nil {
		resp := responseFromError(err)
		if resp.status >= http.StatusInternalServerError {
			log.Err(err).Str("func", funcName).Msg("request failed")
		} else {
			log.Warn().Err(err).Str("func", funcName).Msg("request rejected")
		}
		if _, werr := utils.WriteFailure(w, resp.message, resp.status); werr != nil {
			log.Err(werr).Str("func", funcName).Msg("error writing response")
		}
		return
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error encoding configuration")
		utils.WriteFailure(w, responseFromError(err).message, http.StatusInternalServerError)
		return
	}
	if _, err = utils.WriteSuccess(w, data, http.StatusOK); err != nil {
		log.Err(err).Str("func", funcName).Msg("error writing response")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errInvalidJSON, err)
	}
	return nil
}
