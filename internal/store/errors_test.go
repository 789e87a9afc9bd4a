package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("translate", func() {
	It("passes nil through", func() {
		Expect(translate(nil)).To(Succeed())
	})

	It("maps no rows to ErrNotFound", func() {
		err := translate(fmt.Errorf("scan: %w", pgx.ErrNoRows))
		Expect(err).To(MatchError(ErrNotFound))
	})

	It("maps unique violations to ErrDuplicate with the constraint name", func() {
		err := translate(&pgconn.PgError{Code: "23505", ConstraintName: "congratulations_celebration_user_key"})
		Expect(errors.Is(err, ErrDuplicate)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("congratulations_celebration_user_key"))
	})

	It("maps foreign key violations to ErrNotFound", func() {
		err := translate(&pgconn.PgError{Code: "23503", ConstraintName: "connections_addressee_id_fkey"})
		Expect(errors.Is(err, ErrNotFound)).To(BeTrue())
	})

	It("leaves other database errors untouched", func() {
		pgErr := &pgconn.PgError{Code: "40001"}
		Expect(translate(pgErr)).To(BeIdenticalTo(error(pgErr)))
	})
})

var _ = Describe("deleted", func() {
	It("reports zero affected rows as ErrNotFound", func() {
		Expect(deleted(0, nil)).To(MatchError(ErrNotFound))
	})

	It("succeeds when a row was removed", func() {
		Expect(deleted(1, nil)).To(Succeed())
	})

	It("translates query errors", func() {
		Expect(deleted(0, pgx.ErrNoRows)).To(MatchError(ErrNotFound))
	})
})

var _ = Describe("timestamp helpers", func() {
	It("round-trips optional times", func() {
		now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

		Expect(timePtr(nullTimestamptz(nil))).To(BeNil())
		Expect(*timePtr(nullTimestamptz(&now))).To(Equal(now))
		Expect(timestamptz(now)).To(Equal(pgtype.Timestamptz{Time: now, Valid: true}))
	})
})
