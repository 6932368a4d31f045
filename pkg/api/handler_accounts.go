package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/scoutqa/scout/pkg/models"
	"github.com/scoutqa/scout/pkg/provider"
)

// AccountLoginRequest is the POST /api/v1/accounts/login body.
type AccountLoginRequest struct {
	ProjectID     string                 `json:"projectId"`
	UserAccountID string                 `json:"userAccountId"`
	WebsiteURL    string                 `json:"websiteUrl"`
	Provider      models.BrowserProvider `json:"provider,omitempty"`
}

// AccountLoginResponse reports the outcome of a profile login.
type AccountLoginResponse struct {
	Success   bool   `json:"success"`
	ProfileID string `json:"profileId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// accountLoginHandler authenticates a persistent browser profile for one
// account. On success the profile descriptor is written back to the account
// so subsequent runs reuse the session.
func (s *Server) accountLoginHandler(c *echo.Context) error {
	teamID := extractTeamID(c)
	author := extractAuthor(c)

	var req AccountLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	switch {
	case req.ProjectID == "":
		return echo.NewHTTPError(http.StatusBadRequest, "projectId is required")
	case req.UserAccountID == "":
		return echo.NewHTTPError(http.StatusBadRequest, "userAccountId is required")
	case req.WebsiteURL == "":
		return echo.NewHTTPError(http.StatusBadRequest, "websiteUrl is required")
	}

	ctx := c.Request().Context()
	st, err := s.store.GetOrCreate(ctx, teamID)
	if err != nil {
		return mapServiceError(err)
	}

	providerName := req.Provider
	if providerName == "" {
		providerName = st.Settings.BrowserProvider
	}
	slot := models.ProfileSlotFor(providerName)
	if slot == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "provider does not support persistent profiles")
	}

	var account *models.UserAccount
	for _, a := range st.ProjectAccounts(req.ProjectID) {
		if a.ID == req.UserAccountID {
			account = &a
			break
		}
	}
	if account == nil {
		return echo.NewHTTPError(http.StatusNotFound, "user account not found")
	}

	prov, err := s.providers(providerName)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	keys, err := s.store.GetProviderKeys(ctx, teamID)
	if err != nil {
		return mapServiceError(err)
	}

	s.setProfileStatus(ctx, teamID, author, req.ProjectID, req.UserAccountID, slot, models.ProviderProfile{
		Status: models.ProfileStatusAuthenticating,
	})

	res, err := prov.LoginWithProfile(ctx, provider.LoginInput{
		Account:   *account,
		TargetURL: req.WebsiteURL,
		Settings:  st.Settings,
		Keys:      keys,
	})
	if err != nil || !res.Success {
		msg := "profile login failed"
		if err != nil {
			msg = err.Error()
		} else if res.Error != "" {
			msg = res.Error
		}
		s.setProfileStatus(ctx, teamID, author, req.ProjectID, req.UserAccountID, slot, models.ProviderProfile{
			Status: models.ProfileStatusNone,
		})
		return c.JSON(http.StatusOK, AccountLoginResponse{Success: false, Error: msg})
	}

	s.setProfileStatus(ctx, teamID, author, req.ProjectID, req.UserAccountID, slot, models.ProviderProfile{
		ProfileID: res.ProfileID,
		Status:    models.ProfileStatusAuthenticated,
		UpdatedAt: time.Now().UTC(),
	})
	return c.JSON(http.StatusOK, AccountLoginResponse{Success: true, ProfileID: res.ProfileID})
}

// deleteAccountHandler removes an account from its project. Provider-side
// profiles are deleted best-effort first; a provider failure never blocks the
// account removal.
func (s *Server) deleteAccountHandler(c *echo.Context) error {
	teamID := extractTeamID(c)
	author := extractAuthor(c)
	accountID := c.Param("id")

	ctx := c.Request().Context()
	st, err := s.store.GetOrCreate(ctx, teamID)
	if err != nil {
		return mapServiceError(err)
	}
	keys, err := s.store.GetProviderKeys(ctx, teamID)
	if err != nil {
		return mapServiceError(err)
	}

	var account *models.UserAccount
	for projectID := range st.Accounts {
		for _, a := range st.Accounts[projectID] {
			if a.ID == accountID {
				account = &a
				break
			}
		}
	}
	if account == nil {
		return echo.NewHTTPError(http.StatusNotFound, "user account not found")
	}

	for slot, p := range account.Profiles {
		if p.ProfileID == "" {
			continue
		}
		prov, err := s.providers(providerForSlot(slot))
		if err != nil {
			continue
		}
		if err := prov.DeleteProfile(ctx, p.ProfileID, keys); err != nil {
			slog.Warn("Failed to delete provider profile",
				"account_id", accountID, "slot", slot, "error", err)
		}
	}

	_, err = s.store.Mutate(ctx, teamID, author, func(st *models.TeamState) error {
		for projectID, accounts := range st.Accounts {
			for i := range accounts {
				if accounts[i].ID == accountID {
					st.Accounts[projectID] = append(accounts[:i], accounts[i+1:]...)
					break
				}
			}
		}
		// Test cases keep a loose reference to their account; clear it so
		// they fall back to round-robin assignment on the next run.
		for projectID, cases := range st.TestCases {
			for i := range cases {
				if cases[i].UserAccountID == accountID {
					st.TestCases[projectID][i].UserAccountID = ""
				}
			}
		}
		return nil
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// setProfileStatus writes a profile descriptor into the account's slot.
func (s *Server) setProfileStatus(ctx context.Context, teamID, author, projectID, accountID string, slot models.ProfileSlot, p models.ProviderProfile) {
	_, err := s.store.Mutate(ctx, teamID, author, func(st *models.TeamState) error {
		accounts := st.Accounts[projectID]
		for i := range accounts {
			if accounts[i].ID != accountID {
				continue
			}
			if accounts[i].Profiles == nil {
				accounts[i].Profiles = map[models.ProfileSlot]models.ProviderProfile{}
			}
			if p.Status == models.ProfileStatusNone && p.ProfileID == "" {
				delete(accounts[i].Profiles, slot)
			} else {
				accounts[i].Profiles[slot] = p
			}
			return nil
		}
		return nil
	})
	if err != nil {
		slog.Warn("Failed to update profile status", "account_id", accountID, "error", err)
	}
}

func providerForSlot(slot models.ProfileSlot) models.BrowserProvider {
	switch slot {
	case models.ProfileSlotHyperbrowser:
		return models.ProviderHyperbrowser
	case models.ProfileSlotBrowserUseCloud:
		return models.ProviderBrowserUseCloud
	default:
		return ""
	}
}
