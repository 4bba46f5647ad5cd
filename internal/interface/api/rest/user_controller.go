package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-directory-api/internal/application/ports"
	"user-directory-api/internal/interface/api/rest/dto/user"
	"user-directory-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewUserController(
	r gin.IRoutes,
	userService ports.UserService,
	logger *zap.Logger,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	r.GET(RouteUsers, uc.GetUsersHandler)
	r.POST(RouteUsers, uc.CreateUserHandler)
	r.GET(RouteUser, uc.GetUserHandler)
	r.PUT(RouteUser, uc.UpdateUserHandler)
	r.PATCH(RouteUser, uc.PatchUserHandler)
	r.DELETE(RouteUser, uc.DeleteUserHandler)

	r.GET(RouteBirthdays, uc.BirthdaysHandler)

	r.GET(RouteSearch, uc.SearchHandler)
	r.GET(RouteSearchEmail, uc.SearchByFieldHandler("email"))
	r.GET(RouteSearchFirstName, uc.SearchByFieldHandler("first_name"))
	r.GET(RouteSearchLastName, uc.SearchByFieldHandler("last_name"))

	return uc
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
	skip, limit, err := validator.ValidatePaging(c.Query("skip"), c.Query("limit"))
	if err != nil {
		abortWithDetail(c, http.StatusBadRequest, err.Error())
		return
	}

	users, err := uc.userService.FindUsers(c.Request.Context(), skip, limit)
	if err != nil {
		abortWithServiceError(c, uc.logger, "FindUsers()", err, "failed to get users")
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUsers(users))
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("user_id"))
	if err != nil {
		abortWithDetail(c, http.StatusBadRequest, err.Error())
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, uc.logger, "FindUserByID()", err, "failed to get a user")
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) CreateUserHandler(c *gin.Context) {
	var req user.Request
	// for a good boost of performance(x3 minimum) and to avoid reflection under the hood
	// better to use codegen for marshal/unmarshal for example:
	// https://github.com/mailru/easyjson
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithDetail(c, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if errs := validator.ValidateUser(req); errs != nil {
		abortWithFieldErrors(c, errs)
		return
	}

	uDomain, err := user.ToDomainUser(req)
	if err != nil {
		abortWithFieldErrors(c, map[string]string{"day_birthday": err.Error()})
		return
	}

	u, err := uc.userService.CreateUser(c.Request.Context(), uDomain, req.Password)
	if err != nil {
		abortWithServiceError(c, uc.logger, "CreateUser()", err, "failed to create a user")
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) UpdateUserHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("user_id"))
	if err != nil {
		abortWithDetail(c, http.StatusBadRequest, err.Error())
		return
	}

	var req user.Request
	if err = c.ShouldBindJSON(&req); err != nil {
		abortWithDetail(c, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if errs := validator.ValidateUser(req); errs != nil {
		abortWithFieldErrors(c, errs)
		return
	}

	uDomain, err := user.ToDomainUser(req)
	if err != nil {
		abortWithFieldErrors(c, map[string]string{"day_birthday": err.Error()})
		return
	}
	uDomain.ID = id

	u, err := uc.userService.UpdateUser(c.Request.Context(), uDomain)
	if err != nil {
		abortWithServiceError(c, uc.logger, "UpdateUser()", err, "failed to update a user")
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) PatchUserHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("user_id"))
	if err != nil {
		abortWithDetail(c, http.StatusBadRequest, err.Error())
		return
	}

	var req user.PatchRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		abortWithDetail(c, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if errs := validator.ValidatePatch(req); errs != nil {
		abortWithFieldErrors(c, errs)
		return
	}

	patch, err := user.ToDomainPatch(req)
	if err != nil {
		abortWithFieldErrors(c, map[string]string{"day_birthday": err.Error()})
		return
	}

	u, err := uc.userService.PatchUser(c.Request.Context(), id, patch)
	if err != nil {
		abortWithServiceError(c, uc.logger, "PatchUser()", err, "failed to update a user")
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("user_id"))
	if err != nil {
		abortWithDetail(c, http.StatusBadRequest, err.Error())
		return
	}

	if err = uc.userService.DeleteUser(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, uc.logger, "DeleteUser()", err, "failed to delete user")
		return
	}

	c.Status(http.StatusOK)
}
