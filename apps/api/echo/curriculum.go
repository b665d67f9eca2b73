package echoapi

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/academica/curricula/core/curriculum"
	"github.com/academica/curricula/core/user"
	"github.com/academica/curricula/xlsx"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type curriculumApi struct {
	svc curriculum.Service
}

func registerCurriculumAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc curriculum.Service) {
	api := curriculumApi{svc: svc}

	cg := g.Group("/curricula", jwt)
	staff := staffMiddleware(user.RoleDepartmentHead)

	cg.GET("", api.query)
	cg.POST("", api.create, superAdminMiddleware())
	cg.GET("/template", api.template)
	cg.GET("/:code", api.retrieve)
	cg.PUT("/:code", api.update, staff)
	cg.DELETE("/:code", api.destroy, superAdminMiddleware())

	cg.POST("/:code/import", api.importCourses, staff)
	cg.GET("/:code/export", api.export)

	cg.POST("/:code/courses", api.addCourse, staff)
	cg.PUT("/:code/courses/:courseCode", api.updateCourse, staff)
	cg.DELETE("/:code/courses/:courseCode", api.removeCourse, staff)
	cg.GET("/:code/courses", api.queryCourses)
	cg.GET("/:code/courses/:courseCode/prerequisite-tree", api.prerequisiteTree)
	cg.GET("/:code/semesters/:semester/courses", api.coursesInSemester)
}

// Handlers

func (api *curriculumApi) create(ctx echo.Context) error {
	var data curriculum.NewCurriculum
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCurriculum")
	}
	if err := data.Validate(api.svc); err != nil {
		return err
	}

	crm, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating curriculum")
	}
	return ctx.JSON(http.StatusCreated, crm)
}

func (api *curriculumApi) query(ctx echo.Context) error {
	curricula, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying curricula")
	}
	return ctx.JSON(http.StatusOK, curricula)
}

func (api *curriculumApi) retrieve(ctx echo.Context) error {
	crm, err := api.svc.GetByCode(ctx.Param("code"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, crm)
}

func (api *curriculumApi) update(ctx echo.Context) error {
	crm, err := api.svc.GetByCode(ctx.Param("code"))
	if err != nil {
		return err
	}

	var data curriculum.UpdateCurriculum
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateCurriculum")
	}
	if err := data.Validate(crm); err != nil {
		return err
	}

	crm, err = api.svc.Update(crm.Code, data)
	if err != nil {
		return errors.Wrap(err, "updating curriculum")
	}
	return ctx.JSON(http.StatusOK, crm)
}

func (api *curriculumApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("code")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// importCourses replaces the curriculum's courses with the uploaded workbook's
// contents. With ?preview=true the decoded courses and warnings are returned
// without saving.
func (api *curriculumApi) importCourses(ctx echo.Context) error {
	code := ctx.Param("code")
	if _, err := api.svc.GetByCode(code); err != nil {
		return err
	}

	fileHdr, err := ctx.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file upload")
	}
	file, err := fileHdr.Open()
	if err != nil {
		return errors.Wrap(err, "opening upload")
	}
	defer func() { _ = file.Close() }()

	tab, err := xlsx.Read(file)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid workbook")
	}

	preview, _ := strconv.ParseBool(ctx.QueryParam("preview"))
	courses, warnings, err := api.svc.Import(code, tab, !preview)
	if err != nil {
		return err
	}
	if warnings == nil {
		warnings = []string{}
	}
	return ctx.JSON(http.StatusOK, ImportResponse{
		Applied:  !preview,
		Warnings: warnings,
		Courses:  courses,
	})
}

func (api *curriculumApi) export(ctx echo.Context) error {
	code := ctx.Param("code")
	tab, err := api.svc.Export(code)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := xlsx.Write(&buf, tab); err != nil {
		return errors.Wrap(err, "writing workbook")
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s.xlsx", code))
	return ctx.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (api *curriculumApi) template(ctx echo.Context) error {
	var buf bytes.Buffer
	if err := xlsx.WriteTemplate(&buf); err != nil {
		return errors.Wrap(err, "writing template")
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=curriculum-template.xlsx")
	return ctx.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (api *curriculumApi) addCourse(ctx echo.Context) error {
	var course curriculum.Course
	if err := ctx.Bind(&course); err != nil {
		return errors.Wrap(err, "binding to Course")
	}

	crm, err := api.svc.AddCourse(ctx.Param("code"), course)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, crm)
}

func (api *curriculumApi) updateCourse(ctx echo.Context) error {
	var course curriculum.Course
	if err := ctx.Bind(&course); err != nil {
		return errors.Wrap(err, "binding to Course")
	}
	course.Code = ctx.Param("courseCode")

	crm, err := api.svc.UpdateCourse(ctx.Param("code"), course)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, crm)
}

func (api *curriculumApi) removeCourse(ctx echo.Context) error {
	crm, err := api.svc.RemoveCourse(ctx.Param("code"), ctx.Param("courseCode"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, crm)
}

// queryCourses lists the curriculum's courses, optionally filtered with
// ?type=mandatory|selective.
func (api *curriculumApi) queryCourses(ctx echo.Context) error {
	code := ctx.Param("code")

	if courseType := ctx.QueryParam("type"); courseType != "" {
		courses, err := api.svc.CoursesOfType(code, courseType)
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, courses)
	}

	crm, err := api.svc.GetByCode(code)
	if err != nil {
		return err
	}
	courses := make([]curriculum.Course, 0, len(crm.Courses))
	for _, courseCode := range crm.Courses.Codes() {
		courses = append(courses, crm.Courses[courseCode])
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *curriculumApi) coursesInSemester(ctx echo.Context) error {
	semester, err := strconv.Atoi(ctx.Param("semester"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid semester number")
	}

	courses, err := api.svc.CoursesInSemester(ctx.Param("code"), semester)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *curriculumApi) prerequisiteTree(ctx echo.Context) error {
	tree, err := api.svc.PrerequisiteTree(ctx.Param("code"), ctx.Param("courseCode"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, tree)
}
