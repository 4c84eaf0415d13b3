package controllers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/bahm1979/gestion-locative-backend/internal/dtos"
	"github.com/bahm1979/gestion-locative-backend/internal/middleware"
	"github.com/bahm1979/gestion-locative-backend/internal/services"
	"github.com/bahm1979/gestion-locative-backend/internal/utils"
)

// maxAvatarSize caps profile picture uploads at 5 MB.
const maxAvatarSize = 5 << 20

// AuthController handles registration, login and the profile
// endpoints.
type AuthController struct {
	auth services.AuthService
}

func NewAuthController(auth services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := c.auth.Register(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.RegisterResponse{
		Message: "Utilisateur créé avec succès",
		User:    user,
	})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	token, user, err := c.auth.Login(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.LoginResponse{Token: token, User: user})
}

func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.UserFromContext(r.Context())
	if claims == nil {
		utils.RespondError(w, http.StatusUnauthorized, "Token invalide")
		return
	}

	user, err := c.auth.GetMe(r.Context(), claims.UserID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// UpdateProfile accepts either a JSON body or a multipart form with an
// optional "avatar" file (JPEG or PNG, 5 MB max). The upload is staged
// in a temp file; the service moves it into place or deletes it.
func (c *AuthController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.UserFromContext(r.Context())
	if claims == nil {
		utils.RespondError(w, http.StatusUnauthorized, "Token invalide")
		return
	}

	var nom, email, tmpPath, ext string

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Le fichier dépasse la taille maximale de 5 Mo")
			return
		}
		nom = r.FormValue("nom")
		email = r.FormValue("email")

		file, header, err := r.FormFile("avatar")
		if err == nil {
			defer file.Close()
			if header.Size > maxAvatarSize {
				utils.RespondError(w, http.StatusBadRequest, "Le fichier dépasse la taille maximale de 5 Mo")
				return
			}
			switch header.Header.Get("Content-Type") {
			case "image/jpeg", "image/png":
			default:
				utils.RespondError(w, http.StatusBadRequest, "Seules les images JPEG et PNG sont acceptées")
				return
			}
			ext = strings.ToLower(filepath.Ext(header.Filename))

			tmp, err := os.CreateTemp("", "avatar-*")
			if err != nil {
				utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de l'enregistrement du fichier", err)
				return
			}
			if _, err := io.Copy(tmp, file); err != nil {
				tmp.Close()
				os.Remove(tmp.Name())
				utils.RespondError(w, http.StatusInternalServerError, "Erreur lors de l'enregistrement du fichier", err)
				return
			}
			tmp.Close()
			tmpPath = tmp.Name()
		}
	} else {
		var req dtos.UpdateProfileRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}
		nom, email = req.Nom, req.Email
	}

	user, err := c.auth.UpdateProfile(r.Context(), claims.UserID, nom, email, tmpPath, ext)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}
