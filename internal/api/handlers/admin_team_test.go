package handlers_test

import (
	"net/http"
	"testing"

	"gamejam-portal-backend/internal/api/handlers"
	apperrors "gamejam-portal-backend/internal/errors"
	"gamejam-portal-backend/internal/mocks"
	"gamejam-portal-backend/internal/service"
	"gamejam-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminTeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAdminTeamServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *AdminTeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAdminTeamServiceInterface(suite.ctrl)
	handler := handlers.NewAdminTeamHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	teams := suite.httpSuite.Router.Group("/api/admin/teams")
	{
		teams.GET("", handler.ListTeams)
		teams.GET("/:id", handler.GetTeam)
		teams.POST("/:id/members", handler.MatchMember)
		teams.DELETE("/:id", handler.DeleteTeam)
	}
}

func (suite *AdminTeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AdminTeamHandlerTestSuite) TestListTeams() {
	suite.mockService.EXPECT().
		List("piksel", 1, 20).
		Return(&service.TeamListResponse{
			Teams: []service.TeamSummaryResponse{{ID: uuid.New(), Name: "Pikseller", MemberCount: 3}},
			Total: 1, Page: 1, PageSize: 20,
		}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/admin/teams?q=piksel", nil)

	var resp service.TeamListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.Require().Len(resp.Teams, 1)
	suite.Equal(int64(3), resp.Teams[0].MemberCount)
}

func (suite *AdminTeamHandlerTestSuite) TestGetTeam() {
	id := uuid.New()
	suite.mockService.EXPECT().Get(id).Return(nil, apperrors.ErrTeamNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/admin/teams/"+id.String(), nil)

	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *AdminTeamHandlerTestSuite) TestMatchMember() {
	teamID := uuid.New()
	userID := uuid.New()

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Match(gomock.Any(), teamID, userID).
			Return(&service.TeamDetailResponse{
				TeamSummaryResponse: service.TeamSummaryResponse{ID: teamID, MemberCount: 2},
				Members:             []service.TeamMemberResponse{{ID: userID}},
			}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/admin/teams/"+teamID.String()+"/members",
			map[string]string{"user_id": userID.String()})

		var resp service.TeamDetailResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
		assert.Equal(t, teamID, resp.ID)
	})

	suite.T().Run("InOtherTeam", func(t *testing.T) {
		suite.mockService.EXPECT().Match(gomock.Any(), teamID, userID).Return(nil, apperrors.ErrInOtherTeam)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/admin/teams/"+teamID.String()+"/members",
			map[string]string{"user_id": userID.String()})

		var resp handlers.ConflictResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusConflict, &resp)
		assert.Equal(t, "IN_OTHER_TEAM", resp.Code)
	})

	suite.T().Run("MissingUser", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/admin/teams/"+teamID.String()+"/members", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("BadTeamID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/admin/teams/xyz/members",
			map[string]string{"user_id": userID.String()})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Geçersiz takım kimliği")
	})
}

func (suite *AdminTeamHandlerTestSuite) TestDeleteTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Delete(gomock.Any(), id).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/admin/teams/"+id.String(), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("HasSubmissions", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Delete(gomock.Any(), id).Return(apperrors.ErrTeamHasSubmissions)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/admin/teams/"+id.String(), nil)

		var resp handlers.ConflictResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusConflict, &resp)
		assert.Equal(t, "HAS_SUBMISSIONS", resp.Code)
	})
}

func TestAdminTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AdminTeamHandlerTestSuite))
}
