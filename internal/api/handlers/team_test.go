package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"gamejam-portal-backend/internal/api/handlers"
	"gamejam-portal-backend/internal/cookies"
	"gamejam-portal-backend/internal/database/models"
	apperrors "gamejam-portal-backend/internal/errors"
	"gamejam-portal-backend/internal/mocks"
	"gamejam-portal-backend/internal/service"
	"gamejam-portal-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamHandlerTestSuite defines the test suite for the roster endpoints
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRoster *mocks.MockRosterServiceInterface
	handler    *handlers.TeamHandler
	httpSuite  *testutils.HTTPTestSuite
}

const sessionEmailHeader = "X-Test-Session-Email"

func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRoster = mocks.NewMockRosterServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockRoster, cookies.NewJar(false, ""))
	suite.httpSuite = testutils.SetupHTTPTest()

	// stands in for OptionalAuth
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		if email := c.GetHeader(sessionEmailHeader); email != "" {
			c.Set("email", email)
		}
		c.Next()
	})

	team := suite.httpSuite.Router.Group("/api/team")
	{
		team.GET("", suite.handler.GetTeam)
		team.PATCH("", suite.handler.PatchTeam)
		team.POST("", suite.handler.AddMember)
		team.DELETE("", suite.handler.RemoveMember)
	}
}

func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func rosterOf(name string, emails ...string) *cookies.TeamSnapshot {
	snap := &cookies.TeamSnapshot{Type: models.TeamTypeTeam, TeamName: name, InviteCode: "ABCD1234"}
	for i, e := range emails {
		snap.Members = append(snap.Members, cookies.SnapshotMember{
			Name:     "Üye " + e,
			Email:    e,
			Phone:    "5551234567",
			Age:      20,
			Role:     models.ProfileRoleDeveloper,
			Status:   models.MemberStatusActive,
			IsLeader: i == 0,
		})
	}
	return snap
}

func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.T().Run("rebuilt snapshot is written back", func(t *testing.T) {
		profile := &cookies.Profile{Name: "Lider", Email: "Lead@Jam.dev", Role: models.ProfileRoleDeveloper}
		placeholder := rosterOf("Takımım", cookies.PlaceholderLeaderEmail)
		rebuilt := rosterOf("Pikseller", "lead@jam.dev", "ayse@jam.dev")

		suite.mockRoster.EXPECT().
			Read(gomock.Any(), gomock.Any(), gomock.Any(), false).
			DoAndReturn(func(_ context.Context, caller service.Caller, snap *cookies.TeamSnapshot, _ bool) (*cookies.TeamSnapshot, bool, error) {
				assert.Equal(t, "lead@jam.dev", caller.Email)
				require.NotNil(t, caller.Profile)
				assert.Equal(t, "Lider", caller.Profile.Name)
				assert.Equal(t, placeholder, snap)
				return rebuilt, true, nil
			})

		recorder := suite.httpSuite.MakeRequestWithCookies(http.MethodGet, "/api/team", nil, []*http.Cookie{
			testutils.JSONCookie(t, cookies.ProfileCookie, profile),
			testutils.JSONCookie(t, cookies.TeamCookie, placeholder),
		})

		var body cookies.TeamSnapshot
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &body)
		assert.Equal(t, "Pikseller", body.TeamName)
		assert.Len(t, body.Members, 2)

		var stored cookies.TeamSnapshot
		testutils.DecodeCookie(t, testutils.ResponseCookie(recorder, cookies.TeamCookie), &stored)
		assert.Equal(t, *rebuilt, stored)
	})

	suite.T().Run("unchanged snapshot leaves the cookie alone", func(t *testing.T) {
		current := rosterOf("Pikseller", "lead@jam.dev")
		suite.mockRoster.EXPECT().
			Read(gomock.Any(), gomock.Any(), current, false).
			Return(current, false, nil)

		recorder := suite.httpSuite.MakeRequestWithCookies(http.MethodGet, "/api/team", nil, []*http.Cookie{
			testutils.JSONCookie(t, cookies.TeamCookie, current),
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Nil(t, testutils.ResponseCookie(recorder, cookies.TeamCookie))
	})

	suite.T().Run("refresh=1 with session email wins over profile", func(t *testing.T) {
		profile := &cookies.Profile{Name: "Eski", Email: "old@jam.dev"}
		suite.mockRoster.EXPECT().
			Read(gomock.Any(), gomock.Any(), gomock.Nil(), true).
			DoAndReturn(func(_ context.Context, caller service.Caller, _ *cookies.TeamSnapshot, _ bool) (*cookies.TeamSnapshot, bool, error) {
				assert.Equal(t, "lead@jam.dev", caller.Email)
				return rosterOf("Pikseller", "lead@jam.dev"), true, nil
			})

		recorder := suite.httpSuite.MakeRequestWithHeadersAndCookies(http.MethodGet, "/api/team?refresh=1", nil,
			map[string]string{sessionEmailHeader: "LEAD@jam.dev"},
			[]*http.Cookie{testutils.JSONCookie(t, cookies.ProfileCookie, profile)})

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.NotNil(t, testutils.ResponseCookie(recorder, cookies.TeamCookie))
	})

	suite.T().Run("database failure", func(t *testing.T) {
		suite.mockRoster.EXPECT().
			Read(gomock.Any(), gomock.Any(), gomock.Any(), true).
			Return(nil, false, errors.New("connection refused"))

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/team?refresh=1", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Beklenmeyen bir hata oluştu")
	})
}

func (suite *TeamHandlerTestSuite) TestPatchTeam() {
	suite.T().Run("rename", func(t *testing.T) {
		updated := rosterOf("Yeni Ad", "lead@jam.dev")
		suite.mockRoster.EXPECT().
			Patch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ service.Caller, _ *cookies.TeamSnapshot, req *service.PatchTeamRequest) (*cookies.TeamSnapshot, error) {
				require.NotNil(t, req.TeamName)
				assert.Equal(t, "Yeni Ad", *req.TeamName)
				assert.Nil(t, req.Action)
				return updated, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/team", map[string]interface{}{"teamName": "Yeni Ad"})

		var body cookies.TeamSnapshot
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &body)
		assert.Equal(t, "Yeni Ad", body.TeamName)

		var stored cookies.TeamSnapshot
		testutils.DecodeCookie(t, testutils.ResponseCookie(recorder, cookies.TeamCookie), &stored)
		assert.Equal(t, "Yeni Ad", stored.TeamName)
	})

	suite.T().Run("invalid action", func(t *testing.T) {
		suite.mockRoster.EXPECT().
			Patch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrInvalidAction)

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/team", map[string]interface{}{"action": "explode"})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Geçersiz işlem")
		assert.Nil(t, testutils.ResponseCookie(recorder, cookies.TeamCookie))
	})

	suite.T().Run("malformed body", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/team", "not an object")

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Geçersiz istek gövdesi")
	})
}

func (suite *TeamHandlerTestSuite) TestAddMember() {
	body := map[string]interface{}{
		"action":     service.ActionAddMember,
		"sendInvite": true,
		"member": map[string]interface{}{
			"name":  "Ayşe Yılmaz",
			"email": "ayse@jam.dev",
			"phone": "5551234567",
			"age":   22,
			"role":  "artist",
		},
	}

	suite.T().Run("success with invite", func(t *testing.T) {
		team := rosterOf("Pikseller", "lead@jam.dev", "ayse@jam.dev")
		suite.mockRoster.EXPECT().
			AddMember(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ service.Caller, _ *cookies.TeamSnapshot, req *service.AddMemberRequest) (*service.AddMemberResult, error) {
				assert.True(t, req.SendInvite)
				assert.Equal(t, "ayse@jam.dev", req.Member.Email)
				assert.Equal(t, models.ProfileRoleArtist, req.Member.Role)
				return &service.AddMemberResult{OK: true, Team: team, InviteResetURL: "https://jam.dev/reset?token=abc"}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/team", body)

		var resp service.AddMemberResult
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
		assert.True(t, resp.OK)
		assert.Equal(t, "https://jam.dev/reset?token=abc", resp.InviteResetURL)
		assert.Len(t, resp.Team.Members, 2)
		assert.NotNil(t, testutils.ResponseCookie(recorder, cookies.TeamCookie))
	})

	suite.T().Run("member in another team", func(t *testing.T) {
		suite.mockRoster.EXPECT().
			AddMember(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrInOtherTeam)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/team", body)

		var resp handlers.ConflictResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusConflict, &resp)
		assert.Equal(t, "IN_OTHER_TEAM", resp.Code)
		assert.NotEmpty(t, resp.Error)
		assert.Nil(t, testutils.ResponseCookie(recorder, cookies.TeamCookie))
	})

	suite.T().Run("team full", func(t *testing.T) {
		suite.mockRoster.EXPECT().
			AddMember(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrTeamFull)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/team", body)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Maksimum 4 kişi")
	})

	suite.T().Run("no identity", func(t *testing.T) {
		suite.mockRoster.EXPECT().
			AddMember(gomock.Any(), service.Caller{}, gomock.Nil(), gomock.Any()).
			Return(nil, apperrors.ErrUnauthenticated)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/team", body)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func (suite *TeamHandlerTestSuite) TestRemoveMember() {
	suite.T().Run("success", func(t *testing.T) {
		team := rosterOf("Pikseller", "lead@jam.dev")
		suite.mockRoster.EXPECT().
			RemoveMember(gomock.Any(), gomock.Any(), gomock.Any(), "ayse@jam.dev").
			Return(team, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/team?email=ayse@jam.dev", nil)

		var resp handlers.RosterResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
		assert.True(t, resp.OK)
		assert.Len(t, resp.Team.Members, 1)
		assert.NotNil(t, testutils.ResponseCookie(recorder, cookies.TeamCookie))
	})

	suite.T().Run("not on roster", func(t *testing.T) {
		suite.mockRoster.EXPECT().
			RemoveMember(gomock.Any(), gomock.Any(), gomock.Any(), "ghost@jam.dev").
			Return(nil, apperrors.ErrMemberNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/team?email=ghost@jam.dev", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Üye bulunamadı")
	})

	suite.T().Run("profile cookie alone is not a session", func(t *testing.T) {
		profile := &cookies.Profile{Name: "Lider", Email: "victim-leader@jam.dev"}
		suite.mockRoster.EXPECT().
			RemoveMember(gomock.Any(), gomock.Any(), gomock.Any(), "uye@jam.dev").
			DoAndReturn(func(_ context.Context, caller service.Caller, snap *cookies.TeamSnapshot, _ string) (*cookies.TeamSnapshot, error) {
				assert.Equal(t, "victim-leader@jam.dev", caller.Email)
				assert.False(t, caller.Verified)
				return snap, nil
			})

		recorder := suite.httpSuite.MakeRequestWithCookies(http.MethodDelete, "/api/team?email=uye@jam.dev", nil, []*http.Cookie{
			testutils.JSONCookie(t, cookies.ProfileCookie, profile),
			testutils.JSONCookie(t, cookies.TeamCookie, rosterOf("Pikseller", "victim-leader@jam.dev", "uye@jam.dev")),
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("session caller is verified", func(t *testing.T) {
		suite.mockRoster.EXPECT().
			RemoveMember(gomock.Any(), gomock.Any(), gomock.Any(), "uye@jam.dev").
			DoAndReturn(func(_ context.Context, caller service.Caller, _ *cookies.TeamSnapshot, _ string) (*cookies.TeamSnapshot, error) {
				assert.Equal(t, "lead@jam.dev", caller.Email)
				assert.True(t, caller.Verified)
				return rosterOf("Pikseller", "lead@jam.dev"), nil
			})

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodDelete, "/api/team?email=uye@jam.dev", nil,
			map[string]string{sessionEmailHeader: "Lead@jam.dev"})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("member of another leader's team", func(t *testing.T) {
		suite.mockRoster.EXPECT().
			RemoveMember(gomock.Any(), gomock.Any(), gomock.Any(), "lead@jam.dev").
			Return(nil, apperrors.ErrNotTeamLeader)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodDelete, "/api/team?email=lead@jam.dev", nil,
			map[string]string{sessionEmailHeader: "uye@jam.dev"})

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "Bu işlemi yalnızca takım lideri yapabilir")
		assert.Nil(t, testutils.ResponseCookie(recorder, cookies.TeamCookie))
	})

	suite.T().Run("email missing", func(t *testing.T) {
		suite.mockRoster.EXPECT().
			RemoveMember(gomock.Any(), gomock.Any(), gomock.Any(), "").
			Return(nil, apperrors.ErrEmailRequired)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/team", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestForgedProfileCookieLeavesDatabaseAlone runs the real roster service behind the
// handler. The repository mocks have no expectations, so any database call fails.
func TestForgedProfileCookieLeavesDatabaseAlone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roster := service.NewRosterService(
		mocks.NewMockUserRepositoryInterface(ctrl),
		mocks.NewMockTeamRepositoryInterface(ctrl),
		mocks.NewMockInviteServiceInterface(ctrl),
		service.NewValidator(),
		4,
	)
	handler := handlers.NewTeamHandler(roster, cookies.NewJar(false, ""))
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.PATCH("/api/team", handler.PatchTeam)
	httpSuite.Router.POST("/api/team", handler.AddMember)
	httpSuite.Router.DELETE("/api/team", handler.RemoveMember)

	forged := func(t *testing.T) []*http.Cookie {
		return []*http.Cookie{
			testutils.JSONCookie(t, cookies.ProfileCookie, &cookies.Profile{Name: "Lider", Email: "victim-leader@jam.dev"}),
			testutils.JSONCookie(t, cookies.TeamCookie, rosterOf("Pikseller", "victim-leader@jam.dev", "uye@jam.dev", "diger@jam.dev")),
		}
	}

	t.Run("remove stays in the cookie", func(t *testing.T) {
		recorder := httpSuite.MakeRequestWithCookies(http.MethodDelete, "/api/team?email=uye@jam.dev", nil, forged(t))

		var resp handlers.RosterResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
		assert.False(t, resp.Team.HasEmail("uye@jam.dev"))
	})

	t.Run("to_individual stays in the cookie", func(t *testing.T) {
		recorder := httpSuite.MakeRequestWithCookies(http.MethodPatch, "/api/team", map[string]interface{}{"action": service.ActionToIndividual}, forged(t))

		var snap cookies.TeamSnapshot
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &snap)
		assert.Len(t, snap.Members, 1)
	})

	t.Run("add is refused", func(t *testing.T) {
		recorder := httpSuite.MakeRequestWithCookies(http.MethodPost, "/api/team", map[string]interface{}{
			"action":     service.ActionAddMember,
			"sendInvite": true,
			"member": map[string]interface{}{
				"name": "Saldırgan Üye", "email": "yeni@jam.dev", "phone": "5551234567", "age": 22, "role": "artist",
			},
		}, forged(t))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Nil(t, testutils.ResponseCookie(recorder, cookies.TeamCookie))
	})
}

func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
