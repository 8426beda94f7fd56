package handler

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var sellerActor = &usecase.Actor{UserID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Role: entity.RoleSeller}

func newTestProductHandler(t *testing.T) (*ProductHandler, *mockUsecase.MockProductUsecase) {
	productUC := mockUsecase.NewMockProductUsecase(t)

	return NewProductHandler(ProductHandlerParams{ProductUC: productUC, Logger: newDiscardLogger()}), productUC
}

func TestProductHandler_GetProduct(t *testing.T) {
	productID := uuid.New()

	t.Run("public read", func(t *testing.T) {
		h, productUC := newTestProductHandler(t)
		productUC.EXPECT().GetProduct(mock.Anything, productID).Return(&entity.ProductInfo{
			ID:          productID,
			Name:        "Banh mi",
			Price:       decimal.RequireFromString("25000"),
			IsAvailable: true,
		}, nil).Once()

		rec := serve(t, h.GetProduct, testRequest{
			method: http.MethodGet,
			target: "/api/products/" + productID.String(),
			params: map[string]string{"id": productID.String()},
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var info entity.ProductInfo
		decodeData(t, rec, &info)
		assert.Equal(t, "Banh mi", info.Name)
	})

	t.Run("not found", func(t *testing.T) {
		h, productUC := newTestProductHandler(t)
		productUC.EXPECT().GetProduct(mock.Anything, productID).Return(nil, domainerrors.ErrProductNotFound).Once()

		rec := serve(t, h.GetProduct, testRequest{
			method: http.MethodGet,
			target: "/api/products/" + productID.String(),
			params: map[string]string{"id": productID.String()},
		})

		requireErrorCode(t, rec, http.StatusNotFound, "PRODUCT_NOT_FOUND")
	})
}

func TestProductHandler_CreateProduct(t *testing.T) {
	t.Run("available by default", func(t *testing.T) {
		h, productUC := newTestProductHandler(t)
		productUC.EXPECT().CreateProduct(mock.Anything, sellerActor.UserID, mock.MatchedBy(func(in usecase.CreateProductInput) bool {
			return in.Name == "Banh mi" && in.IsAvailable && in.Price.Equal(decimal.RequireFromString("25000"))
		})).Return(&entity.Product{ID: uuid.New(), Name: "Banh mi", Price: decimal.RequireFromString("25000"), IsAvailable: true}, nil).Once()

		rec := serve(t, h.CreateProduct, testRequest{
			method: http.MethodPost,
			target: "/api/products",
			body:   `{"name":"Banh mi","price":"25000"}`,
			actor:  sellerActor,
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		var p ProductResponse
		decodeData(t, rec, &p)
		assert.True(t, p.IsAvailable)
	})

	t.Run("banned shop", func(t *testing.T) {
		h, productUC := newTestProductHandler(t)
		productUC.EXPECT().CreateProduct(mock.Anything, sellerActor.UserID, mock.Anything).
			Return(nil, domainerrors.ErrShopBanned).Once()

		rec := serve(t, h.CreateProduct, testRequest{
			method: http.MethodPost,
			target: "/api/products",
			body:   `{"name":"Banh mi","price":"25000","isAvailable":false}`,
			actor:  sellerActor,
		})

		requireErrorCode(t, rec, http.StatusForbidden, "SHOP_BANNED")
		assert.Nil(t, decodeEnvelope(t, rec).Errors.Details)
	})
}

func TestProductHandler_UpdateAndDelete(t *testing.T) {
	productID := uuid.New()

	t.Run("partial update", func(t *testing.T) {
		h, productUC := newTestProductHandler(t)
		productUC.EXPECT().UpdateProduct(mock.Anything, sellerActor.UserID, productID, mock.MatchedBy(func(in usecase.UpdateProductInput) bool {
			return in.Name == nil && in.Price != nil && in.Price.Equal(decimal.RequireFromString("30000")) &&
				in.IsAvailable != nil && !*in.IsAvailable
		})).Return(&entity.Product{ID: productID, Price: decimal.RequireFromString("30000")}, nil).Once()

		rec := serve(t, h.UpdateProduct, testRequest{
			method: http.MethodPut,
			target: "/api/products/" + productID.String(),
			body:   `{"price":"30000","isAvailable":false}`,
			params: map[string]string{"id": productID.String()},
			actor:  sellerActor,
		})

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete someone else's product", func(t *testing.T) {
		h, productUC := newTestProductHandler(t)
		productUC.EXPECT().DeleteProduct(mock.Anything, sellerActor.UserID, productID).Return(domainerrors.ErrForbidden).Once()

		rec := serve(t, h.DeleteProduct, testRequest{
			method: http.MethodDelete,
			target: "/api/products/" + productID.String(),
			params: map[string]string{"id": productID.String()},
			actor:  sellerActor,
		})

		requireErrorCode(t, rec, http.StatusForbidden, "FORBIDDEN")
	})
}
