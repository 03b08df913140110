package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/service"
)

type newEmployee struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Department  string `json:"department" validate:"required,max=100"`
	Designation string `json:"designation" validate:"required,max=100"`
	Username    string `json:"username" validate:"required,min=3,max=50"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
	Phone       string `json:"phone" validate:"omitempty,contact"`
	Dob         string `json:"dob" validate:"omitempty,datetime=02/01/2006"`
	Address     string `json:"address" validate:"max=300"`
}

type updateEmployee struct {
	ID          string  `param:"id" validate:"required,uuid"`
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Department  *string `json:"department" validate:"omitempty,max=100"`
	Designation *string `json:"designation" validate:"omitempty,max=100"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone" validate:"omitempty,contact"`
	Address     *string `json:"address" validate:"omitempty,max=300"`
}

type newDepartment struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// EmployeeHTTPHandler is http handler for employee endpoint
type EmployeeHTTPHandler struct {
	employeeSvc service.EmployeeService
}

// NewEmployeeHTTPHandler builds new EmployeeHTTPHandler
func NewEmployeeHTTPHandler(employeeSvc service.EmployeeService) *EmployeeHTTPHandler {
	return &EmployeeHTTPHandler{employeeSvc: employeeSvc}
}

// Post creates employee
// @Summary     New employee
// @Description Creates employee together with login user having employee role
// @Tags        employees
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       newEmployee body     newEmployee true "Employee data"
// @Success     201         {object} model.Employee
// @Failure     400         {object} validation.PayloadError
// @Failure     401         {object} echo.HTTPError
// @Failure     403         {object} echo.HTTPError
// @Failure     500         {object} echo.HTTPError
// @Router      /api/employees [post]
func (h *EmployeeHTTPHandler) Post(c echo.Context) error {
	var ne newEmployee
	if err := c.Bind(&ne); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&ne); err != nil {
		return err
	}

	e, err := h.employeeSvc.Create(c.Request().Context(), &model.Employee{
		Name:        ne.Name,
		Department:  ne.Department,
		Designation: ne.Designation,
		Username:    ne.Username,
		Email:       ne.Email,
		Phone:       ne.Phone,
		Dob:         ne.Dob,
		Address:     ne.Address,
	}, ne.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, e)
}

// GetAll gets all employees
// @Summary     Get all employees
// @Tags        employees
// @Security    ApiKeyAuth
// @Produce     json
// @Success     200 {array}  model.Employee
// @Failure     401 {object} echo.HTTPError
// @Failure     500 {object} echo.HTTPError
// @Router      /api/employees [get]
func (h *EmployeeHTTPHandler) GetAll(c echo.Context) error {
	employees, err := h.employeeSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// Get gets employee
// @Summary     Get single employee by id
// @Tags        employees
// @Security    ApiKeyAuth
// @Produce     json
// @Param       id  path     string true "Employee guid" Format(uuid)
// @Success     200 {object} model.Employee
// @Failure     400 {object} validation.PayloadError
// @Failure     404 {object} echo.HTTPError
// @Failure     500 {object} echo.HTTPError
// @Router      /api/employees/{id} [get]
func (h *EmployeeHTTPHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	e, err := h.employeeSvc.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, e)
}

// Put updates employee
// @Summary     Update employee
// @Description Changes provided employee fields, omitted fields are kept
// @Tags        employees
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       id             path     string         true "Employee guid" Format(uuid)
// @Param       updateEmployee body     updateEmployee true "Employee data"
// @Success     200            {object} model.Employee
// @Failure     400            {object} validation.PayloadError
// @Failure     404            {object} echo.HTTPError
// @Failure     500            {object} echo.HTTPError
// @Router      /api/employees/{id} [put]
func (h *EmployeeHTTPHandler) Put(c echo.Context) error {
	var ue updateEmployee
	if err := c.Bind(&ue); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&ue); err != nil {
		return err
	}

	e, err := h.employeeSvc.Update(c.Request().Context(), ue.ID, &model.EmployeePatch{
		Name:        ue.Name,
		Department:  ue.Department,
		Designation: ue.Designation,
		Email:       ue.Email,
		Phone:       ue.Phone,
		Address:     ue.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, e)
}

// DepartmentHTTPHandler is http handler for department endpoint
type DepartmentHTTPHandler struct {
	departmentSvc service.DepartmentService
}

// NewDepartmentHTTPHandler builds new DepartmentHTTPHandler
func NewDepartmentHTTPHandler(departmentSvc service.DepartmentService) *DepartmentHTTPHandler {
	return &DepartmentHTTPHandler{departmentSvc: departmentSvc}
}

// Post creates department
// @Summary     New department
// @Tags        departments
// @Security    ApiKeyAuth
// @Accept      json
// @Produce     json
// @Param       newDepartment body     newDepartment true "Department name"
// @Success     201           {object} model.Department
// @Failure     400           {object} validation.PayloadError
// @Failure     403           {object} echo.HTTPError
// @Failure     500           {object} echo.HTTPError
// @Router      /api/departments [post]
func (h *DepartmentHTTPHandler) Post(c echo.Context) error {
	var nd newDepartment
	if err := c.Bind(&nd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nd); err != nil {
		return err
	}

	d, err := h.departmentSvc.Create(c.Request().Context(), nd.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, d)
}

// GetAll gets all departments
// @Summary     Get all departments
// @Description Returns departments sorted by name
// @Tags        departments
// @Security    ApiKeyAuth
// @Produce     json
// @Success     200 {array}  model.Department
// @Failure     500 {object} echo.HTTPError
// @Router      /api/departments [get]
func (h *DepartmentHTTPHandler) GetAll(c echo.Context) error {
	departments, err := h.departmentSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, departments)
}
