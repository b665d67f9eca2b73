package tests

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academica/curricula/core/curriculum"
	"github.com/academica/curricula/core/user"
	testutil "github.com/academica/curricula/tests"
	"github.com/academica/curricula/xlsx"
)

func templateCourses(t *testing.T) curriculum.CourseMap {
	t.Helper()

	courses, _, err := curriculum.Decode(curriculum.Template())
	require.NoError(t, err)
	return courses
}

func newImportRequest(t *testing.T, path, token string, tab curriculum.Table) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", "courses.xlsx")
	require.NoError(t, err)
	require.NoError(t, xlsx.Write(part, tab))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, httptest.NewRecorder()
}

func Test_curriculumApi_crud(t *testing.T) {
	admin := testutil.CreateUser(t, usrRepo, "Admin", "crm-admin", "crm-admin@test.cd", "LePass#123",
		[]string{user.RoleSuperAdmin}, true)
	prof := testutil.CreateUser(t, usrRepo, "Prof", "crm-prof", "crm-prof@test.cd", "LePass#123",
		[]string{user.RoleProfessor}, true)

	newCrm := map[string]interface{}{
		"major_code":      "6B061",
		"classification":  "Information Systems",
		"code":            "CRUD2026",
		"degree_type":     "BSC",
		"total_credits":   240,
		"department_code": "cs",
	}

	tests := []httpTest{
		{
			name: "auth required", method: http.MethodPost, path: "/v1/curricula",
			body: marchallObj(t, newCrm), wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken),
		},
		{
			name: "superadmin required", method: http.MethodPost, path: "/v1/curricula",
			body: marchallObj(t, newCrm), token: getToken(t, prof),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, httpErr{Error: "permission denied"}),
		},
		{
			name: "create", method: http.MethodPost, path: "/v1/curricula",
			body: marchallObj(t, newCrm), token: getToken(t, admin), wantCode: http.StatusCreated,
		},
		{
			name: "duplicate code", method: http.MethodPost, path: "/v1/curricula",
			body: marchallObj(t, newCrm), token: getToken(t, admin), wantCode: http.StatusBadRequest,
		},
		{
			name: "bachelors credits too low", method: http.MethodPost, path: "/v1/curricula",
			body: marchallObj(t, map[string]interface{}{
				"major_code": "6B061", "classification": "IS", "code": "LOW2026",
				"degree_type": "BSC", "total_credits": 60, "department_code": "cs",
			}),
			token: getToken(t, admin), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"total_credits": "a Bachelor's degree must have at least 120 credits"}),
		},
		{
			name: "retrieve", method: http.MethodGet, path: "/v1/curricula/CRUD2026",
			token: getToken(t, prof), wantCode: http.StatusOK,
		},
		{
			name: "retrieve unknown", method: http.MethodGet, path: "/v1/curricula/NOPE",
			token: getToken(t, prof), wantCode: http.StatusNotFound,
		},
		{
			name: "delete requires superadmin", method: http.MethodDelete, path: "/v1/curricula/CRUD2026",
			token: getToken(t, prof), wantCode: http.StatusForbidden,
		},
		{
			name: "delete", method: http.MethodDelete, path: "/v1/curricula/CRUD2026",
			token: getToken(t, admin), wantCode: http.StatusNoContent,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_curriculumApi_courses(t *testing.T) {
	head := testutil.CreateUser(t, usrRepo, "Head", "crs-head", "crs-head@test.cd", "LePass#123",
		[]string{user.RoleDepartmentHead}, true)
	crm := testutil.CreateCurriculum(t, crmRepo, "CRS2026", "cs", templateCourses(t))
	token := getToken(t, head)

	course := func(code, name string, prereqs ...string) []byte {
		if prereqs == nil {
			prereqs = []string{}
		}
		return marchallObj(t, curriculum.Course{
			Code: code, Name: name, Type: curriculum.TypeMandatory,
			Prerequisites: prereqs,
			Semesters: []curriculum.SemesterData{{
				Semester: 3, Credits: 3,
				Hours: curriculum.HourDistribution{Lecture: 30, Lab: 30, Individual: 30},
			}},
		})
	}

	base := "/v1/curricula/" + crm.Code

	tests := []httpTest{
		{
			name: "add course", method: http.MethodPost, path: base + "/courses",
			body: course("CS301", "Algorithms", "CS201"), token: token, wantCode: http.StatusCreated,
		},
		{
			name: "add existing course", method: http.MethodPost, path: base + "/courses",
			body: course("CS301", "Algorithms"), token: token,
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Error: "course CS301: course already exists"}),
		},
		{
			name: "add course with unknown prerequisite", method: http.MethodPost, path: base + "/courses",
			body: course("CS401", "Distributed Systems", "NOPE"), token: token,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "update unknown course", method: http.MethodPut, path: base + "/courses/NOPE",
			body: course("NOPE", "Mystery"), token: token,
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "course NOPE does not exist"}),
		},
		{
			name: "remove prerequisite in use", method: http.MethodDelete, path: base + "/courses/CS101",
			token:    token,
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "course CS101: cannot remove: it is a prerequisite for CS201"}),
		},
		{
			name: "remove course", method: http.MethodDelete, path: base + "/courses/CS301",
			token: token, wantCode: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("courses in semester", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, base+"/semesters/1/courses", token)
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "CS101")
		assert.NotContains(t, rec.Body.String(), "CS201")
	})

	t.Run("courses of type", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, base+"/courses?type=mandatory", token)
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "CS101")
	})

	t.Run("prerequisite tree", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, base+"/courses/CS201/prerequisite-tree", token)
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "CS101")
	})
}

func Test_curriculumApi_importExport(t *testing.T) {
	head := testutil.CreateUser(t, usrRepo, "Head", "imp-head", "imp-head@test.cd", "LePass#123",
		[]string{user.RoleDepartmentHead}, true)
	crm := testutil.CreateCurriculum(t, crmRepo, "IMP2026", "cs", nil)
	token := getToken(t, head)

	base := "/v1/curricula/" + crm.Code

	t.Run("preview does not save", func(t *testing.T) {
		req, rec := newImportRequest(t, base+"/import?preview=true", token, curriculum.Template())
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), `"applied":false`)

		refreshed, err := crmRepo.GetCurriculumByCode(crm.Code)
		require.NoError(t, err)
		assert.Empty(t, refreshed.Courses)
	})

	t.Run("import applies", func(t *testing.T) {
		req, rec := newImportRequest(t, base+"/import", token, curriculum.Template())
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), `"applied":true`)

		refreshed, err := crmRepo.GetCurriculumByCode(crm.Code)
		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.Courses)
	})

	t.Run("import invalid table", func(t *testing.T) {
		bad := curriculum.Template()
		bad.Columns = bad.Columns[:2] // drop required columns
		bad.Records = nil
		req, rec := newImportRequest(t, base+"/import", token, bad)
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("export", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, base+"/export", token)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
		assert.Equal(t, fmt.Sprintf("attachment; filename=%s.xlsx", crm.Code), rec.Header().Get("Content-Disposition"))

		tab, err := xlsx.Read(rec.Body)
		require.NoError(t, err)
		courses, _, err := curriculum.Decode(tab)
		require.NoError(t, err)
		assert.Len(t, courses, len(templateCourses(t)))
	})

	t.Run("template", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/curricula/template", token)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotZero(t, rec.Body.Len())
	})
}
