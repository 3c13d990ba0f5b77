package family

import (
	"bodylover-backend/internal/api/v1/common"
	"bodylover-backend/internal/services"
	"bodylover-backend/internal/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SendRequest godoc
// @Summary Send a family request
// @Description relationType is read from the requester's side, e.g. FATHER_SON when the requester is the father
// @Tags family
// @Accept json
// @Produce json
// @Param input body SendRequestInput true "Request"
// @Success 200 {object} utils.Response{data=models.FamilyRelation}
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /family/request [post]
func SendRequest(c *gin.Context) {
	var input SendRequestInput
	if !utils.BindAndValidate(c, &input) || !common.AuthorizeUser(c, input.RequesterID) {
		return
	}
	if input.target() == "" {
		utils.Fail(c, http.StatusBadRequest, "targetAccountId is required")
		return
	}

	relation, err := services.SendFamilyRequest(input.RequesterID, input.target(), input.RelationType)
	if err != nil {
		common.RespondError(c, err, "send family request")
		return
	}

	utils.OK(c, "Request sent", relation)
}

// PendingRequests godoc
// @Summary Pending family requests
// @Description Requests waiting on the user, labelled with who the requester is to them
// @Tags family
// @Produce json
// @Param userId query int true "User ID"
// @Success 200 {object} utils.Response{data=[]services.PendingRequest}
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /family/requests [get]
func PendingRequests(c *gin.Context) {
	userID, ok := utils.QueryUint(c, "userId")
	if !ok || !common.AuthorizeUser(c, userID) {
		return
	}

	pending, err := services.PendingFamilyRequests(userID)
	if err != nil {
		common.RespondError(c, err, "list family requests")
		return
	}

	utils.OK(c, "", pending)
}

// Members godoc
// @Summary Family members
// @Description Accepted relatives with their plan progress on a day
// @Tags family
// @Produce json
// @Param userId query int true "User ID"
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} utils.Response{data=[]services.FamilyMember}
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /family/members [get]
func Members(c *gin.Context) {
	userID, ok := utils.QueryUint(c, "userId")
	if !ok || !common.AuthorizeUser(c, userID) {
		return
	}

	members, err := services.FamilyMembers(userID, c.Query("date"))
	if err != nil {
		common.RespondError(c, err, "list family members")
		return
	}

	utils.OK(c, "", members)
}

// HandleRequest godoc
// @Summary Accept or reject a family request
// @Description Unknown ids are ignored
// @Tags family
// @Accept json
// @Produce json
// @Param id path int true "Relation ID"
// @Param input body HandleRequestInput true "Decision"
// @Success 200 {object} utils.Response{data=models.FamilyRelation}
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Router /family/request/{id} [put]
func HandleRequest(c *gin.Context) {
	id, ok := utils.ParamUint(c, "id")
	if !ok {
		return
	}

	var input HandleRequestInput
	if !utils.BindAndValidate(c, &input) {
		return
	}
	if !common.AuthorizeOwner(c, func() (uint, bool, error) { return services.FamilyRelationReceiver(id) }, "load family request") {
		return
	}

	relation, err := services.HandleFamilyRequest(id, input.Status)
	if err != nil {
		common.RespondError(c, err, "update family request")
		return
	}
	if relation == nil {
		utils.OK(c, "Request updated", nil)
		return
	}

	utils.OK(c, "Request updated", relation)
}
