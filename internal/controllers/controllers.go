package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/bahm1979/gestion-locative-backend/internal/utils"
)

var validate = validator.New()

// decodeAndValidate decodes the JSON body into dst and runs the
// struct validation tags. It writes the 400 response itself and
// reports whether the handler should continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Corps de requête invalide")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) && len(vErrs) > 0 {
			utils.RespondError(w, http.StatusBadRequest, "Le champ "+vErrs[0].Field()+" est invalide ou manquant")
			return false
		}
		utils.RespondError(w, http.StatusBadRequest, "Champs invalides ou manquants")
		return false
	}
	return true
}

// pathID extracts the {id} route variable as a UUID. Writes the 400
// response itself on failure.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Identifiant invalide")
		return uuid.Nil, false
	}
	return id, true
}
