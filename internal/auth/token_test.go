package auth_test

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/geniusdynamics/alumate-sub010/internal/auth"
	"github.com/geniusdynamics/alumate-sub010/internal/model"
)

var _ = Describe("TokenManager", func() {
	var tm *auth.TokenManager

	BeforeEach(func() {
		var err error
		tm, err = auth.NewTokenManager("test-secret", "alumate")
		Expect(err).NotTo(HaveOccurred())
	})

	It("requires a secret", func() {
		_, err := auth.NewTokenManager("", "alumate")
		Expect(err).To(HaveOccurred())
	})

	It("round-trips the actor", func() {
		actor := model.Actor{ID: 1234567890123, Roles: model.NewRoleSet(model.RoleMember, model.RoleModerator)}

		token, err := tm.Issue(actor, time.Hour)
		Expect(err).NotTo(HaveOccurred())

		got, err := tm.Verify(token)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(actor))
	})

	It("rejects expired tokens", func() {
		token, err := tm.Issue(model.Actor{ID: 1}, -time.Minute)
		Expect(err).NotTo(HaveOccurred())

		_, err = tm.Verify(token)
		Expect(err).To(MatchError(auth.ErrExpiredToken))
	})

	It("rejects tokens signed with another secret", func() {
		other, _ := auth.NewTokenManager("other-secret", "alumate")
		token, err := other.Issue(model.Actor{ID: 1}, time.Hour)
		Expect(err).NotTo(HaveOccurred())

		_, err = tm.Verify(token)
		Expect(err).To(MatchError(auth.ErrInvalidToken))
	})

	It("rejects tokens from another issuer", func() {
		other, _ := auth.NewTokenManager("test-secret", "someone-else")
		token, _ := other.Issue(model.Actor{ID: 1}, time.Hour)

		_, err := tm.Verify(token)
		Expect(err).To(MatchError(auth.ErrInvalidToken))
	})

	It("rejects a non-numeric subject", func() {
		claims := jwt.RegisteredClaims{
			Subject:   "alice",
			Issuer:    "alumate",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		Expect(err).NotTo(HaveOccurred())

		_, err = tm.Verify(token)
		Expect(err).To(MatchError(auth.ErrInvalidToken))
	})

	It("refuses to issue for an empty actor", func() {
		_, err := tm.Issue(model.Actor{}, time.Hour)
		Expect(err).To(HaveOccurred())
	})
})
