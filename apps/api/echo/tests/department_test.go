package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/academica/curricula/core/user"
	testutil "github.com/academica/curricula/tests"
)

func Test_departmentApi_crud(t *testing.T) {
	admin := testutil.CreateUser(t, usrRepo, "Admin", "dep-admin", "dep-admin@test.cd", "LePass#123",
		[]string{user.RoleSuperAdmin}, true)
	prof := testutil.CreateUser(t, usrRepo, "Prof", "dep-prof", "dep-prof@test.cd", "LePass#123",
		[]string{user.RoleProfessor}, true)

	newDept := marchallObj(t, map[string]string{
		"code":  "math",
		"title": "Mathematics",
	})

	tests := []httpTest{
		{
			name: "auth required", method: http.MethodPost, path: "/v1/departments",
			body: newDept, wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken),
		},
		{
			name: "superadmin required", method: http.MethodPost, path: "/v1/departments",
			body: newDept, token: getToken(t, prof),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, httpErr{Error: "permission denied"}),
		},
		{
			name: "create", method: http.MethodPost, path: "/v1/departments",
			body: newDept, token: getToken(t, admin), wantCode: http.StatusCreated,
		},
		{
			name: "duplicate code", method: http.MethodPost, path: "/v1/departments",
			body: newDept, token: getToken(t, admin), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"code": "a department with this code already exists"}),
		},
		{
			name: "retrieve", method: http.MethodGet, path: "/v1/departments/math",
			token: getToken(t, prof), wantCode: http.StatusOK,
		},
		{
			name: "retrieve unknown", method: http.MethodGet, path: "/v1/departments/nope",
			token: getToken(t, prof), wantCode: http.StatusNotFound,
		},
		{
			name: "update", method: http.MethodPut, path: "/v1/departments/math",
			body:  marchallObj(t, map[string]string{"title": "Applied Mathematics"}),
			token: getToken(t, admin), wantCode: http.StatusOK,
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

func Test_departmentApi_professors(t *testing.T) {
	admin := testutil.CreateUser(t, usrRepo, "Admin", "pro-admin", "pro-admin@test.cd", "LePass#123",
		[]string{user.RoleSuperAdmin}, true)
	head := testutil.CreateUser(t, usrRepo, "Head", "pro-head", "pro-head@test.cd", "LePass#123",
		[]string{user.RoleDepartmentHead}, true)
	otherHead := testutil.CreateUser(t, usrRepo, "Other", "pro-other", "pro-other@test.cd", "LePass#123",
		[]string{user.RoleDepartmentHead}, true)

	testutil.CreateDepartment(t, deptRepo, "phys", "Physics", head.ID)
	testutil.CreateDepartment(t, deptRepo, "chem", "Chemistry", otherHead.ID)

	newProf := func(email string, years int) []byte {
		return marchallObj(t, map[string]interface{}{
			"user_id":             "u1",
			"department_code":     "phys",
			"full_name":           "Marie Curie",
			"email":               email,
			"years_of_experience": years,
			"has_phd":             true,
		})
	}

	tests := []httpTest{
		{
			name: "owning head can create", method: http.MethodPost, path: "/v1/professors",
			body: newProf("marie@test.cd", 7), token: getToken(t, head), wantCode: http.StatusCreated,
		},
		{
			name: "other head cannot create", method: http.MethodPost, path: "/v1/professors",
			body: newProf("pierre@test.cd", 2), token: getToken(t, otherHead),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, httpErr{Error: "permission denied"}),
		},
		{
			name: "superadmin can create", method: http.MethodPost, path: "/v1/professors",
			body: newProf("pierre@test.cd", 2), token: getToken(t, admin), wantCode: http.StatusCreated,
		},
		{
			name: "duplicate email", method: http.MethodPost, path: "/v1/professors",
			body: newProf("marie@test.cd", 1), token: getToken(t, admin), wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown department", method: http.MethodPost, path: "/v1/professors",
			body: marchallObj(t, map[string]interface{}{
				"user_id": "u2", "department_code": "nope", "full_name": "No One", "email": "noone@test.cd",
			}),
			token: getToken(t, admin), wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("experience level is derived", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/professors?department=phys", getToken(t, head))
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"experience_level":"experienced"`)
		assert.Contains(t, rec.Body.String(), `"experience_level":"intermediate"`)
	})
}
