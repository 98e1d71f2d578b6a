package v1

import (
	"net/http"

	"github.com/hearthbudget/backend/internal/httputil"
	"github.com/hearthbudget/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
func RegisterUserRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsUserList)
		r.GET("", GetUsers)
		r.POST("", CreateUsers)
	}

	// User with ID
	{
		r.OPTIONS("/:id", OptionsUserDetail)
		r.GET("/:id", GetUser)
		r.PATCH("/:id", UpdateUser)
		r.DELETE("/:id", DeleteUser)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users [options]
func OptionsUserList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/users/{id} [options]
func OptionsUserDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.User{})
}

// @Summary		Create user
// @Description	Creates a new user
// @Tags			Users
// @Produce		json
// @Success		201		{object}	UserCreateResponse
// @Failure		400		{object}	UserCreateResponse
// @Failure		500		{object}	UserCreateResponse
// @Param			users	body		[]UserEditable	true	"Users"
// @Router			/v1/users [post]
func CreateUsers(c *gin.Context) {
	var editables []UserEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := UserCreateResponse{}

	for _, editable := range editables {
		user := editable.model()

		err = models.DB.Create(&user).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newUser(c, user)
		r.Data = append(r.Data, UserResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get users
// @Description	Returns a list of users
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserListResponse
// @Failure		400	{object}	UserListResponse
// @Failure		500	{object}	UserListResponse
// @Router			/v1/users [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			currency	query	string	false	"Filter by display currency"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset		query	uint	false	"The offset of the first User returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Users to return. Defaults to 50."
func GetUsers(c *gin.Context) {
	var filter UserQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserListResponse{
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

	// Default to 50 Users and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var users []models.User
	err = q.Find(&users).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserListResponse{
			Error: &e,
		})
		return
	}

	data := make([]User, 0, len(users))
	for _, user := range users {
		data = append(data, newUser(c, user))
	}

	c.JSON(http.StatusOK, UserListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get user
// @Description	Returns a specific user
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		400	{object}	UserResponse
// @Failure		404	{object}	UserResponse
// @Failure		500	{object}	UserResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/users/{id} [get]
func GetUser(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	var user models.User
	err = models.DB.First(&user, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	data := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}

// @Summary		Update user
// @Description	Update an existing user. Only values to be updated need to be specified.
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		404		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			user	body		UserEditable	true	"User"
// @Router			/v1/users/{id} [patch]
func UpdateUser(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	var user models.User
	err = models.DB.First(&user, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, UserEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	var data UserEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&user).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	r := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &r})
}

// @Summary		Delete user
// @Description	Deletes a user
// @Tags			Users
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/users/{id} [delete]
func DeleteUser(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var user models.User
	err = models.DB.First(&user, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&user).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
