package v1

import (
	"net/http"

	"github.com/hearthbudget/backend/internal/httputil"
	"github.com/hearthbudget/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterSharedBudgetRoutes registers the routes for shared budgets
// with the RouterGroup that is passed.
func RegisterSharedBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSharedBudgetList)
		r.GET("", GetSharedBudgets)
		r.POST("", CreateSharedBudgets)
	}

	// Shared budget with ID
	{
		r.OPTIONS("/:id", OptionsSharedBudgetDetail)
		r.GET("/:id", GetSharedBudget)
		r.PATCH("/:id", UpdateSharedBudget)
		r.DELETE("/:id", DeleteSharedBudget)
	}

	// Membership sub-resource
	{
		r.OPTIONS("/:id/members", OptionsMemberList)
		r.GET("/:id/members", GetMembers)
		r.POST("/:id/members", CreateMembers)
		r.PATCH("/:id/members/:userId", UpdateMember)
		r.DELETE("/:id/members/:userId", DeleteMember)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SharedBudgets
// @Success		204
// @Router			/v1/shared-budgets [options]
func OptionsSharedBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SharedBudgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/shared-budgets/{id} [options]
func OptionsSharedBudgetDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.SharedBudget{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SharedBudgets
// @Success		204
// @Router			/v1/shared-budgets/{id}/members [options]
func OptionsMemberList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Create shared budget
// @Description	Creates a new shared budget. The acting user becomes its owner.
// @Tags			SharedBudgets
// @Produce		json
// @Success		201				{object}	SharedBudgetCreateResponse
// @Failure		400				{object}	SharedBudgetCreateResponse
// @Failure		500				{object}	SharedBudgetCreateResponse
// @Param			sharedBudgets	body		[]SharedBudgetEditable	true	"Shared budgets"
// @Param			actingUser		query		string					true	"ID of the user creating the shared budgets"
// @Router			/v1/shared-budgets [post]
func CreateSharedBudgets(c *gin.Context) {
	// The creating user becomes the owner, so it must be known
	ownerID, err := actingUser(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SharedBudgetCreateResponse{
			Error: &e,
		})
		return
	}

	var editables []SharedBudgetEditable

	// Bind data and return error if not possible
	err = httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SharedBudgetCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := SharedBudgetCreateResponse{}

	for _, editable := range editables {
		sharedBudget := editable.model()

		err = models.DB.Create(&sharedBudget).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		member := models.SharedBudgetMember{
			SharedBudgetID: sharedBudget.ID,
			UserID:         ownerID,
			Role:           models.RoleOwner,
		}
		err = models.DB.Create(&member).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newSharedBudget(c, sharedBudget)
		r.Data = append(r.Data, SharedBudgetResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get shared budgets
// @Description	Returns a list of shared budgets
// @Tags			SharedBudgets
// @Produce		json
// @Success		200	{object}	SharedBudgetListResponse
// @Failure		400	{object}	SharedBudgetListResponse
// @Failure		500	{object}	SharedBudgetListResponse
// @Router			/v1/shared-budgets [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			currency	query	string	false	"Filter by display currency"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset		query	uint	false	"The offset of the first shared budget returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of shared budgets to return. Defaults to 50."
func GetSharedBudgets(c *gin.Context) {
	var filter SharedBudgetQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SharedBudgetListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("name ASC").
		Where(&filterModel, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 shared budgets and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var sharedBudgets []models.SharedBudget
	err = q.Find(&sharedBudgets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SharedBudgetListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SharedBudgetListResponse{
			Error: &e,
		})
		return
	}

	data := make([]SharedBudget, 0, len(sharedBudgets))
	for _, sharedBudget := range sharedBudgets {
		data = append(data, newSharedBudget(c, sharedBudget))
	}

	c.JSON(http.StatusOK, SharedBudgetListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get shared budget
// @Description	Returns a specific shared budget
// @Tags			SharedBudgets
// @Produce		json
// @Success		200	{object}	SharedBudgetResponse
// @Failure		400	{object}	SharedBudgetResponse
// @Failure		404	{object}	SharedBudgetResponse
// @Failure		500	{object}	SharedBudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/shared-budgets/{id} [get]
func GetSharedBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SharedBudgetResponse{
			Error: &s,
		})
		return
	}

	var sharedBudget models.SharedBudget
	err = models.DB.First(&sharedBudget, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SharedBudgetResponse{
			Error: &s,
		})
		return
	}

	data := newSharedBudget(c, sharedBudget)
	c.JSON(http.StatusOK, SharedBudgetResponse{Data: &data})
}

// @Summary		Update shared budget
// @Description	Update an existing shared budget. Only values to be updated need to be specified. Only owners may update a shared budget.
// @Tags			SharedBudgets
// @Accept			json
// @Produce		json
// @Success		200				{object}	SharedBudgetResponse
// @Failure		400				{object}	SharedBudgetResponse
// @Failure		403				{object}	SharedBudgetResponse
// @Failure		404				{object}	SharedBudgetResponse
// @Failure		500				{object}	SharedBudgetResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			sharedBudget	body		SharedBudgetEditable	true	"Shared budget"
// @Param			actingUser		query		string					true	"ID of the acting user"
// @Router			/v1/shared-budgets/{id} [patch]
func UpdateSharedBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SharedBudgetResponse{
			Error: &s,
		})
		return
	}

	var sharedBudget models.SharedBudget
	err = models.DB.First(&sharedBudget, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SharedBudgetResponse{
			Error: &s,
		})
		return
	}

	err = requireOwner(c, sharedBudget.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SharedBudgetResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SharedBudgetEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SharedBudgetResponse{
			Error: &s,
		})
		return
	}

	var data SharedBudgetEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SharedBudgetResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&sharedBudget).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SharedBudgetResponse{
			Error: &s,
		})
		return
	}

	r := newSharedBudget(c, sharedBudget)
	c.JSON(http.StatusOK, SharedBudgetResponse{Data: &r})
}

// @Summary		Delete shared budget
// @Description	Deletes a shared budget. Only owners may delete a shared budget.
// @Tags			SharedBudgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id			path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			actingUser	query	string	true	"ID of the acting user"
// @Router			/v1/shared-budgets/{id} [delete]
func DeleteSharedBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var sharedBudget models.SharedBudget
	err = models.DB.First(&sharedBudget, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = requireOwner(c, sharedBudget.ID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&sharedBudget).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Get members
// @Description	Returns the members of a shared budget. The acting user must be a member.
// @Tags			SharedBudgets
// @Produce		json
// @Success		200	{object}	MemberListResponse
// @Failure		400	{object}	MemberListResponse
// @Failure		403	{object}	MemberListResponse
// @Failure		404	{object}	MemberListResponse
// @Failure		500	{object}	MemberListResponse
// @Param			id			path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			actingUser	query	string	true	"ID of the acting user"
// @Router			/v1/shared-budgets/{id}/members [get]
func GetMembers(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberListResponse{
			Error: &s,
		})
		return
	}

	var sharedBudget models.SharedBudget
	err = models.DB.First(&sharedBudget, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberListResponse{
			Error: &s,
		})
		return
	}

	err = requireView(c, sharedBudget.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberListResponse{
			Error: &s,
		})
		return
	}

	var members []models.SharedBudgetMember
	err = models.DB.
		Where("shared_budget_id = ?", sharedBudget.ID).
		Order("created_at ASC").
		Find(&members).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Member, 0, len(members))
	for _, member := range members {
		data = append(data, newMember(c, member))
	}

	c.JSON(http.StatusOK, MemberListResponse{Data: data})
}

// @Summary		Add members
// @Description	Adds members to a shared budget. Only owners manage memberships.
// @Tags			SharedBudgets
// @Produce		json
// @Success		201		{object}	MemberListResponse
// @Failure		400		{object}	MemberListResponse
// @Failure		403		{object}	MemberListResponse
// @Failure		404		{object}	MemberListResponse
// @Failure		500		{object}	MemberListResponse
// @Param			id			path	URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			members		body	[]MemberEditable	true	"Members"
// @Param			actingUser	query	string				true	"ID of the acting user"
// @Router			/v1/shared-budgets/{id}/members [post]
func CreateMembers(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberListResponse{
			Error: &s,
		})
		return
	}

	var sharedBudget models.SharedBudget
	err = models.DB.First(&sharedBudget, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberListResponse{
			Error: &s,
		})
		return
	}

	err = requireOwner(c, sharedBudget.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberListResponse{
			Error: &s,
		})
		return
	}

	var editables []MemberEditable
	err = httputil.BindData(c, &editables)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Member, 0, len(editables))
	for _, editable := range editables {
		member := models.SharedBudgetMember{
			SharedBudgetID: sharedBudget.ID,
			UserID:         editable.UserID,
			Role:           editable.Role,
		}

		err = models.DB.Create(&member).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), MemberListResponse{
				Error: &s,
			})
			return
		}

		data = append(data, newMember(c, member))
	}

	c.JSON(http.StatusCreated, MemberListResponse{Data: data})
}

// @Summary		Update member
// @Description	Updates the role of a member. Only owners manage memberships.
// @Tags			SharedBudgets
// @Produce		json
// @Success		200	{object}	MemberResponse
// @Failure		400	{object}	MemberResponse
// @Failure		403	{object}	MemberResponse
// @Failure		404	{object}	MemberResponse
// @Failure		500	{object}	MemberResponse
// @Param			id			path	URIMember		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			member		body	MemberEditable	true	"Member"
// @Param			actingUser	query	string			true	"ID of the acting user"
// @Router			/v1/shared-budgets/{id}/members/{userId} [patch]
func UpdateMember(c *gin.Context) {
	var uri URIMember
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberResponse{
			Error: &s,
		})
		return
	}

	var member models.SharedBudgetMember
	err = models.DB.
		Where("shared_budget_id = ? AND user_id = ?", uri.ID.UUID, uri.UserID.UUID).
		First(&member).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberResponse{
			Error: &s,
		})
		return
	}

	err = requireOwner(c, member.SharedBudgetID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberResponse{
			Error: &s,
		})
		return
	}

	var data MemberEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&member).Select("Role").Updates(models.SharedBudgetMember{Role: data.Role}).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberResponse{
			Error: &s,
		})
		return
	}

	r := newMember(c, member)
	c.JSON(http.StatusOK, MemberResponse{Data: &r})
}

// @Summary		Remove member
// @Description	Removes a member from a shared budget. Only owners manage memberships.
// @Tags			SharedBudgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id			path	URIMember	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			actingUser	query	string		true	"ID of the acting user"
// @Router			/v1/shared-budgets/{id}/members/{userId} [delete]
func DeleteMember(c *gin.Context) {
	var uri URIMember
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var member models.SharedBudgetMember
	err = models.DB.
		Where("shared_budget_id = ? AND user_id = ?", uri.ID.UUID, uri.UserID.UUID).
		First(&member).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = requireOwner(c, member.SharedBudgetID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Hard delete so the user can be added again later, the primary
	// key would collide with a soft deleted row
	err = models.DB.Unscoped().Delete(&member).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
