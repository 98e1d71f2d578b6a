package v1

import (
	"net/http"

	"github.com/hearthbudget/backend/internal/httputil"
	"github.com/hearthbudget/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
		r.POST("", CreateCategories)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", GetCategory)
		r.PATCH("/:id", UpdateCategory)
		r.DELETE("/:id", DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Category{})
}

// @Summary		Create category
// @Description	Creates a new category. Mutations on shared budget categories require the actingUser query parameter.
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	CategoryCreateResponse
// @Failure		400			{object}	CategoryCreateResponse
// @Failure		403			{object}	CategoryCreateResponse
// @Failure		404			{object}	CategoryCreateResponse
// @Failure		500			{object}	CategoryCreateResponse
// @Param			categories	body		[]CategoryEditable	true	"Categories"
// @Param			actingUser	query		string				false	"ID of the acting user for shared budget categories"
// @Router			/v1/categories [post]
func CreateCategories(c *gin.Context) {
	var editables []CategoryEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CategoryCreateResponse{}

	for _, editable := range editables {
		if len(editable.SourceRules) > 0 && editable.LimitType != models.LimitPercent {
			status = r.appendError(models.ErrSourceRulesOnFixed, status)
			continue
		}

		// Writing into a shared budget needs write permission there
		if editable.SharedBudgetID != nil {
			err = requireEdit(c, *editable.SharedBudgetID)
			if err != nil {
				status = r.appendError(err, status)
				continue
			}
		}

		category := editable.model()

		err = models.DB.Create(&category).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		err = replaceSourceRules(category, editable.SourceRules)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data, err := newCategory(c, models.DB, category)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}
		r.Data = append(r.Data, CategoryResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get categories
// @Description	Returns a list of categories
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		400	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Router			/v1/categories [get]
// @Param			user			query	string	false	"Filter by owning user ID"
// @Param			sharedBudget	query	string	false	"Filter by owning shared budget ID"
// @Param			name			query	string	false	"Filter by name"
// @Param			note			query	string	false	"Filter by note"
// @Param			limitType		query	string	false	"Filter by limit type"
// @Param			archived		query	bool	false	"Is the category archived?"
// @Param			search			query	string	false	"Search for this text in name and note"
// @Param			offset			query	uint	false	"The offset of the first Category returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of Categories to return. Defaults to 50."
func GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{
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

	// Default to 50 Categories and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var categories []models.Category
	err = q.Find(&categories).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		apiResource, err := newCategory(c, models.DB, category)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), CategoryListResponse{
				Error: &s,
			})
			return
		}
		data = append(data, apiResource)
	}

	c.JSON(http.StatusOK, CategoryListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	CategoryResponse
// @Failure		404	{object}	CategoryResponse
// @Failure		500	{object}	CategoryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [get]
func GetCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	var category models.Category
	err = models.DB.First(&category, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	data, err := newCategory(c, models.DB, category)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// @Summary		Update category
// @Description	Update an existing category. Only values to be updated need to be specified. Mutations on shared budget categories require the actingUser query parameter.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		403			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		CategoryEditable	true	"Category"
// @Param			actingUser	query		string				false	"ID of the acting user for shared budget categories"
// @Router			/v1/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	var category models.Category
	err = models.DB.First(&category, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	if category.SharedBudgetID != nil {
		err = requireEdit(c, *category.SharedBudgetID)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), CategoryResponse{
				Error: &s,
			})
			return
		}
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	var data CategoryEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	// Moving a category into a shared budget needs write permission there
	if data.SharedBudgetID != nil && (category.SharedBudgetID == nil || *category.SharedBudgetID != *data.SharedBudgetID) {
		err = requireEdit(c, *data.SharedBudgetID)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), CategoryResponse{
				Error: &s,
			})
			return
		}
	}

	// Source rules are a sub-resource, not a column
	updateRules := slices.Contains(updateFields, any("SourceRules"))
	if updateRules {
		updateFields = slices.DeleteFunc(updateFields, func(f any) bool { return f == any("SourceRules") })

		limitType := category.LimitType
		if slices.Contains(updateFields, any("LimitType")) {
			limitType = data.LimitType
		}

		if len(data.SourceRules) > 0 && limitType != models.LimitPercent {
			s := models.ErrSourceRulesOnFixed.Error()
			c.JSON(status(models.ErrSourceRulesOnFixed), CategoryResponse{
				Error: &s,
			})
			return
		}
	}

	if len(updateFields) > 0 {
		err = models.DB.Model(&category).Select("", updateFields...).Updates(data.model()).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), CategoryResponse{
				Error: &s,
			})
			return
		}
	}

	if updateRules {
		err = replaceSourceRules(category, data.SourceRules)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), CategoryResponse{
				Error: &s,
			})
			return
		}
	}

	r, err := newCategory(c, models.DB, category)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: &r})
}

// @Summary		Delete category
// @Description	Deletes a category. Its rollover history stops being visible, future months start fresh. Mutations on shared budget categories require the actingUser query parameter.
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id			path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			actingUser	query	string	false	"ID of the acting user for shared budget categories"
// @Router			/v1/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var category models.Category
	err = models.DB.First(&category, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if category.SharedBudgetID != nil {
		err = requireEdit(c, *category.SharedBudgetID)
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}
	}

	err = models.DB.Delete(&category).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// replaceSourceRules swaps the category's source rules for the ones
// passed in. A nil slice clears them.
func replaceSourceRules(category models.Category, rules []SourceRuleEditable) error {
	err := models.DB.Unscoped().
		Where("category_id = ?", category.ID).
		Delete(&models.CategorySourceRule{}).Error
	if err != nil {
		return err
	}

	for _, rule := range rules {
		row := models.CategorySourceRule{
			CategoryID:     category.ID,
			IncomeSourceID: rule.IncomeSourceID,
			Percentage:     rule.Percentage,
		}

		err = models.DB.Create(&row).Error
		if err != nil {
			return err
		}
	}

	return nil
}
