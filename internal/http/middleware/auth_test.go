package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/geniusdynamics/alumate-sub010/common/logger"
	"github.com/geniusdynamics/alumate-sub010/internal/auth"
	"github.com/geniusdynamics/alumate-sub010/internal/http/middleware"
	"github.com/geniusdynamics/alumate-sub010/internal/model"
)

var _ = Describe("Authenticate", func() {
	var (
		router *gin.Engine
		tm     *auth.TokenManager
		seen   model.Actor
		fields logger.LogFields
	)

	BeforeEach(func() {
		var err error
		tm, err = auth.NewTokenManager("secret", "alumate")
		Expect(err).NotTo(HaveOccurred())

		seen = model.Actor{}
		router = gin.New()
		router.Use(middleware.Logger(), middleware.Authenticate(tm))
		router.GET("/me", func(c *gin.Context) {
			seen, _ = middleware.ActorFrom(c)
			fields = logger.GetLogFields(c.Request.Context())
			c.Status(http.StatusNoContent)
		})
	})

	get := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("resolves the actor from a bearer token", func() {
		actor := model.Actor{ID: 77, Roles: model.NewRoleSet(model.RoleModerator)}
		token, err := tm.Issue(actor, time.Minute)
		Expect(err).NotTo(HaveOccurred())

		w := get("Bearer " + token)

		Expect(w.Code).To(Equal(http.StatusNoContent))
		Expect(seen).To(Equal(actor))
		Expect(fields.ActorID).To(HaveValue(Equal(int64(77))))
		Expect(fields.RequestID).NotTo(BeNil())
		Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(*fields.RequestID))
	})

	It("rejects requests without a token", func() {
		Expect(get("").Code).To(Equal(http.StatusUnauthorized))
		Expect(seen.ID).To(BeZero())
	})

	It("rejects other schemes", func() {
		Expect(get("Basic dXNlcjpwYXNz").Code).To(Equal(http.StatusUnauthorized))
	})

	It("rejects expired tokens", func() {
		token, _ := tm.Issue(model.Actor{ID: 1}, -time.Minute)

		w := get("Bearer " + token)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(w.Body.String()).To(ContainSubstring("expired"))
	})
})

var _ = Describe("Recovery", func() {
	It("turns panics into 500", func() {
		router := gin.New()
		router.Use(middleware.Recovery())
		router.GET("/boom", func(*gin.Context) { panic("boom") })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).To(ContainSubstring("internal error"))
	})
})
