//go:build e2e

package catalog_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"click-collect/internal/handler/dto/request"
	"click-collect/tests/common/authtest"
	"click-collect/tests/common/dbtest"
	"click-collect/tests/common/httptest"
	"click-collect/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ratingSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper

	productID uuid.UUID
}

func TestRatingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ratingSuite))
}

func (s *ratingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *ratingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	categoryID := dbtest.CreateTestCategory(s.T(), s.DB, "Épicerie", "epicerie")
	s.productID = dbtest.CreateTestProduct(s.T(), s.DB, dbtest.ProductFixture{
		SKU: "EP-RIZ-001", Name: "Riz parfumé", Price: "2500", Stock: 40, CategoryID: categoryID,
	})
}

func (s *ratingSuite) TestRate() {
	s.Run("concurrent ratings all land in the summary", func() {
		const raters = 8
		tokens := make([]string, raters)
		for i := range raters {
			userID := dbtest.CreateTestUser(s.T(), s.DB, fmt.Sprintf("rater%d", i), fmt.Sprintf("rater%d@example.com", i))
			tokens[i] = s.jwt.GenerateToken(s.T(), userID)
		}

		url := "/api/products/" + s.productID.String() + "/ratings"
		codes := make([]int, raters)
		var wg sync.WaitGroup
		for i := range raters {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url,
					request.RateRequest{Rating: 1 + i%5}, tokens[i])
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		for _, code := range codes {
			s.Equal(http.StatusCreated, code)
		}

		var stored, rows int
		err := s.DB.QueryRow(context.Background(),
			"SELECT rating_count FROM products WHERE id = $1", s.productID).Scan(&stored)
		s.Require().NoError(err)
		err = s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM ratings WHERE product_id = $1", s.productID).Scan(&rows)
		s.Require().NoError(err)

		s.Equal(raters, rows)
		s.Equal(rows, stored)
	})
}
