package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bahm1979/gestion-locative-backend/internal/dtos"
	"github.com/bahm1979/gestion-locative-backend/internal/middleware"
	"github.com/bahm1979/gestion-locative-backend/internal/models"
	"github.com/bahm1979/gestion-locative-backend/internal/repositories"
	"github.com/bahm1979/gestion-locative-backend/internal/utils"
)

type AuthService interface {
	Register(ctx context.Context, req dtos.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req dtos.LoginRequest) (string, *models.User, error)
	GetMe(ctx context.Context, userID uuid.UUID) (*models.User, error)
	// UpdateProfile replaces name and email and, when avatarTmpPath is
	// not empty, moves the staged upload into the avatar directory. The
	// staged file is removed on every failure path.
	UpdateProfile(ctx context.Context, userID uuid.UUID, nom, email, avatarTmpPath, avatarExt string) (*models.User, error)
}

type authService struct {
	users     repositories.UserRepository
	jwtSecret []byte
	uploadDir string
}

func NewAuthService(users repositories.UserRepository, jwtSecret []byte, uploadDir string) AuthService {
	return &authService{users: users, jwtSecret: jwtSecret, uploadDir: uploadDir}
}

func (s *authService) Register(ctx context.Context, req dtos.RegisterRequest) (*models.User, error) {
	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.NewInternalError("Erreur serveur lors de l’enregistrement", err)
	}
	if existing != nil {
		return nil, utils.NewConflictError("Cet email est déjà utilisé")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.NewInternalError("Erreur serveur lors de l’enregistrement", err)
	}

	// Registration never accepts a caller-supplied role.
	user := &models.User{
		ID:           uuid.New(),
		Nom:          req.Nom,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleOwner,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, utils.NewInternalError("Erreur serveur lors de l’enregistrement", err)
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, req dtos.LoginRequest) (string, *models.User, error) {
	// Unknown email and wrong password must be indistinguishable to the
	// caller; only the server-side log tells them apart.
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return "", nil, utils.NewInternalError("Erreur serveur lors de la connexion", err)
	}
	if user == nil {
		utils.Logger.Warnf("Tentative de connexion avec un email inconnu: %s", req.Email)
		return "", nil, utils.NewAuthError("Email ou mot de passe incorrect")
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		utils.Logger.Warnf("Mot de passe incorrect pour %s", req.Email)
		return "", nil, utils.NewAuthError("Email ou mot de passe incorrect")
	}

	token, err := middleware.GenerateToken(s.jwtSecret, middleware.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return "", nil, utils.NewInternalError("Erreur serveur lors de la connexion", err)
	}
	return token, user, nil
}

func (s *authService) GetMe(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, utils.NewInternalError("Erreur serveur lors de la vérification", err)
	}
	if user == nil {
		return nil, utils.NewNotFoundError("Utilisateur non trouvé")
	}
	return user, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, nom, email, avatarTmpPath, avatarExt string) (*models.User, error) {
	cleanup := func() {
		if avatarTmpPath != "" {
			if err := os.Remove(avatarTmpPath); err != nil && !os.IsNotExist(err) {
				utils.Logger.WithError(err).Warn("Impossible de supprimer le fichier temporaire")
			}
		}
	}

	nom = strings.TrimSpace(nom)
	email = strings.TrimSpace(email)
	if nom == "" || email == "" {
		cleanup()
		return nil, utils.NewValidationError("Nom et email sont requis")
	}

	taken, err := s.users.EmailTakenByOther(ctx, email, userID)
	if err != nil {
		cleanup()
		return nil, utils.NewInternalError("Erreur serveur lors de la mise à jour", err)
	}
	if taken {
		cleanup()
		return nil, utils.NewConflictError("Cet email est déjà utilisé par un autre utilisateur")
	}

	current, err := s.users.GetByID(ctx, userID)
	if err != nil {
		cleanup()
		return nil, utils.NewInternalError("Erreur serveur lors de la mise à jour", err)
	}
	if current == nil {
		cleanup()
		return nil, utils.NewNotFoundError("Utilisateur non trouvé")
	}

	avatarPath := current.Avatar
	if avatarTmpPath != "" {
		newName := fmt.Sprintf("%d-avatar%s", time.Now().UnixMilli(), avatarExt)
		destDir := filepath.Join(s.uploadDir, "avatars")
		if err := os.MkdirAll(destDir, 0o755); err != nil {
			cleanup()
			return nil, utils.NewInternalError("Erreur serveur lors de la mise à jour", err)
		}
		if err := os.Rename(avatarTmpPath, filepath.Join(destDir, newName)); err != nil {
			cleanup()
			return nil, utils.NewInternalError("Erreur serveur lors de la mise à jour", err)
		}

		// Drop the previous avatar file once the new one is in place.
		if current.Avatar != nil {
			old := filepath.Join(s.uploadDir, strings.TrimPrefix(*current.Avatar, "/uploads/"))
			if err := os.Remove(old); err != nil && !os.IsNotExist(err) {
				utils.Logger.WithError(err).Warn("Impossible de supprimer l'ancien avatar")
			}
		}
		webPath := "/uploads/avatars/" + newName
		avatarPath = &webPath
	}

	if err := s.users.UpdateProfile(ctx, userID, nom, email, avatarPath); err != nil {
		return nil, utils.NewInternalError("Erreur serveur lors de la mise à jour", err)
	}

	updated := *current
	updated.Nom = nom
	updated.Email = email
	updated.Avatar = avatarPath
	return &updated, nil
}
