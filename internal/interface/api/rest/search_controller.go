package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "user-directory-api/internal/domain/user"
	"user-directory-api/internal/interface/api/rest/dto/user"
	"user-directory-api/internal/interface/api/rest/validator"
)

// BirthdaysHandler answers with one array per day of the window, empty days included.
func (uc *UserController) BirthdaysHandler(c *gin.Context) {
	days, err := validator.ValidateDays(c.Query("days"))
	if err != nil {
		abortWithDetail(c, http.StatusBadRequest, err.Error())
		return
	}

	groups, err := uc.userService.UpcomingBirthdays(c.Request.Context(), days)
	if err != nil {
		abortWithServiceError(c, uc.logger, "UpcomingBirthdays()", err, "failed to get birthdays")
		return
	}

	c.JSON(http.StatusOK, user.ToResponseGroups(groups))
}

// SearchHandler ANDs every supplied criterion; with none it lists every record.
func (uc *UserController) SearchHandler(c *gin.Context) {
	f := domain.NewFilter(c.Query("email"), c.Query("first_name"), c.Query("last_name"))
	uc.search(c, f)
}

func (uc *UserController) SearchByFieldHandler(field string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v := c.Query(field)
		if v == "" {
			abortWithDetail(c, http.StatusBadRequest, "query parameter "+field+" is required")
			return
		}

		var f domain.Filter
		switch field {
		case "email":
			f = domain.NewFilter(v, "", "")
		case "first_name":
			f = domain.NewFilter("", v, "")
		case "last_name":
			f = domain.NewFilter("", "", v)
		}
		uc.search(c, f)
	}
}

func (uc *UserController) search(c *gin.Context, f domain.Filter) {
	users, err := uc.userService.SearchUsers(c.Request.Context(), f)
	if err != nil {
		abortWithServiceError(c, uc.logger, "SearchUsers()", err, "failed to search users")
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUsers(users))
}
