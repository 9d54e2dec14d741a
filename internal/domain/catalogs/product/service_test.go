package product_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/types"
	"salesdesk/internal/domain/catalogs/product"
	"salesdesk/internal/infrastructure/storage/memory"
)

func TestService_RegisterAndChangePrice(t *testing.T) {
	ctx := context.Background()
	svc := product.NewService(memory.NewProductRepo())

	desk := product.NewFurniture("DSK-OAK", "Desk", types.NewMoneyFromInt(250),
		product.FurnitureAttrs{Material: "oak", WidthCM: 140, DepthCM: 70, HeightCM: 74})
	require.NoError(t, svc.Register(ctx, desk))

	err := svc.Register(ctx, desk)
	assert.Equal(t, apperror.CodeDuplicate, appCode(err))

	updated, err := svc.ChangePrice(ctx, "DSK-OAK", types.NewMoneyFromInt(275))
	require.NoError(t, err)
	assert.Equal(t, "275", updated.UnitPrice.String())
	assert.Equal(t, 2, updated.Version)

	got, err := svc.ProductByCode(ctx, "DSK-OAK")
	require.NoError(t, err)
	assert.Equal(t, "275", got.UnitPrice.String())

	_, err = svc.ChangePrice(ctx, "DSK-OAK", types.NewMoneyFromInt(-1))
	assert.ErrorIs(t, err, apperror.ErrInvalidPrice)

	_, err = svc.ChangePrice(ctx, "MISSING", types.NewMoneyFromInt(1))
	assert.True(t, apperror.IsNotFound(err))
}

func TestProduct_Validate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		p    *product.Product
		code string
	}{
		{
			name: "negative price",
			p:    product.NewOfficeSupply("PEN", "Pen", types.NewMoneyFromInt(-2), product.OfficeSupplyAttrs{PackSize: 1}),
			code: apperror.CodeInvalidPrice,
		},
		{
			name: "payload does not match category",
			p: func() *product.Product {
				p := product.NewTechnology("LAP", "Laptop", types.NewMoneyFromInt(900), product.TechnologyAttrs{Brand: "Acme"})
				p.Category = product.CategoryFurniture
				return p
			}(),
			code: apperror.CodeValidation,
		},
		{
			name: "two payloads",
			p: func() *product.Product {
				p := product.NewTechnology("LAP", "Laptop", types.NewMoneyFromInt(900), product.TechnologyAttrs{Brand: "Acme"})
				p.Furniture = &product.FurnitureAttrs{}
				return p
			}(),
			code: apperror.CodeValidation,
		},
		{
			name: "zero pack size",
			p:    product.NewOfficeSupply("PEN", "Pen", types.NewMoneyFromInt(2), product.OfficeSupplyAttrs{}),
			code: apperror.CodeValidation,
		},
		{
			name: "missing name",
			p:    product.NewOfficeSupply("PEN", "", types.NewMoneyFromInt(2), product.OfficeSupplyAttrs{PackSize: 1}),
			code: apperror.CodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, appCode(tt.p.Validate(ctx)))
		})
	}
}

func TestProduct_DescribeAndAttributes(t *testing.T) {
	laptop := product.NewTechnology("LAP-14", "Laptop", types.NewMoneyFromInt(900),
		product.TechnologyAttrs{Brand: "Acme", Model: "X14", WarrantyMonths: 12})
	assert.Equal(t, "Acme X14 Laptop (12 mo. warranty)", laptop.Describe())
	assert.IsType(t, &product.TechnologyAttrs{}, laptop.Attributes())

	paper := product.NewOfficeSupply("A4", "Paper", types.NewMoneyFromInt(5), product.OfficeSupplyAttrs{PackSize: 500})
	assert.Equal(t, "Paper (pack of 500)", paper.Describe())

	clone := paper.Clone()
	clone.OfficeSupply.PackSize = 1
	assert.Equal(t, 500, paper.OfficeSupply.PackSize)
}

func appCode(err error) string {
	if appErr, ok := apperror.AsAppError(err); ok {
		return appErr.Code
	}
	return ""
}
