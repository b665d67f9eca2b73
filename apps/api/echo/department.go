package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/academica/curricula/core/department"
	"github.com/academica/curricula/core/user"
)

type departmentApi struct {
	svc     department.Service
	userSvc user.Service
}

func registerDepartmentAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc department.Service, userSvc user.Service) {
	api := departmentApi{svc: svc, userSvc: userSvc}

	dg := g.Group("/departments", jwt)

	dg.GET("", api.query)
	dg.POST("", api.create, superAdminMiddleware())
	dg.GET("/:code", api.retrieve)
	dg.PUT("/:code", api.update, superAdminMiddleware())
	dg.DELETE("/:code", api.destroy, superAdminMiddleware())

	// professors, managed by superadmins and the owning department head
	pg := g.Group("/professors", jwt)
	pg.GET("", api.queryProfessors)
	pg.POST("", api.createProfessor)
	pg.GET("/:id", api.retrieveProfessor)
	pg.PUT("/:id", api.updateProfessor)
	pg.DELETE("/:id", api.destroyProfessor)
}

// canManageDepartment reports whether the context user is a superadmin or the
// head of the given department.
func (api *departmentApi) canManageDepartment(ctx echo.Context, code string) (bool, error) {
	ctxUsr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return false, errors.Wrap(err, "getting context user")
	}
	if ctxUsr.IsSuperAdmin() {
		return true, nil
	}
	if !ctxUsr.IsDepartmentHead() {
		return false, nil
	}
	dept, err := api.svc.GetByCode(code)
	if err != nil {
		if errors.Cause(err) == department.ErrNotFound {
			return false, nil
		}
		return false, errors.Wrap(err, "getting department")
	}
	return dept.HeadID == ctxUsr.ID, nil
}

// Handlers

func (api *departmentApi) create(ctx echo.Context) error {
	var data department.NewDepartment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewDepartment")
	}
	if err := data.Validate(api.svc); err != nil {
		return err
	}

	dept, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating department")
	}
	return ctx.JSON(http.StatusCreated, dept)
}

func (api *departmentApi) query(ctx echo.Context) error {
	depts, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying departments")
	}
	return ctx.JSON(http.StatusOK, depts)
}

func (api *departmentApi) retrieve(ctx echo.Context) error {
	dept, err := api.svc.GetByCode(ctx.Param("code"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dept)
}

func (api *departmentApi) update(ctx echo.Context) error {
	dept, err := api.svc.GetByCode(ctx.Param("code"))
	if err != nil {
		return err
	}

	var data department.UpdateDepartment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateDepartment")
	}
	if err := data.Validate(dept); err != nil {
		return err
	}

	dept, err = api.svc.Update(dept.Code, data)
	if err != nil {
		return errors.Wrap(err, "updating department")
	}
	return ctx.JSON(http.StatusOK, dept)
}

func (api *departmentApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("code")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *departmentApi) createProfessor(ctx echo.Context) error {
	var data department.NewProfessor
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewProfessor")
	}
	if err := data.Validate(api.svc); err != nil {
		return err
	}

	ok, err := api.canManageDepartment(ctx, data.DepartmentCode)
	if err != nil {
		return err
	}
	if !ok {
		return errHttpForbidden
	}

	prof, err := api.svc.CreateProfessor(data)
	if err != nil {
		return errors.Wrap(err, "creating professor")
	}
	return ctx.JSON(http.StatusCreated, prof)
}

func (api *departmentApi) queryProfessors(ctx echo.Context) error {
	profs, err := api.svc.QueryProfessors(ctx.QueryParam("department"))
	if err != nil {
		return errors.Wrap(err, "querying professors")
	}
	return ctx.JSON(http.StatusOK, profs)
}

func (api *departmentApi) retrieveProfessor(ctx echo.Context) error {
	prof, err := api.svc.GetProfessorByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, prof)
}

func (api *departmentApi) updateProfessor(ctx echo.Context) error {
	prof, err := api.svc.GetProfessorByID(ctx.Param("id"))
	if err != nil {
		return err
	}

	ok, err := api.canManageDepartment(ctx, prof.DepartmentCode)
	if err != nil {
		return err
	}
	if !ok {
		return errHttpForbidden
	}

	var data department.UpdateProfessor
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateProfessor")
	}
	if err := data.Validate(prof, api.svc); err != nil {
		return err
	}

	prof, err = api.svc.UpdateProfessor(prof.ID, data)
	if err != nil {
		return errors.Wrap(err, "updating professor")
	}
	return ctx.JSON(http.StatusOK, prof)
}

func (api *departmentApi) destroyProfessor(ctx echo.Context) error {
	prof, err := api.svc.GetProfessorByID(ctx.Param("id"))
	if err != nil {
		return err
	}

	ok, err := api.canManageDepartment(ctx, prof.DepartmentCode)
	if err != nil {
		return err
	}
	if !ok {
		return errHttpForbidden
	}

	if err := api.svc.DeleteProfessor(prof.ID); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
