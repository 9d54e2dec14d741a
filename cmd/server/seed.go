package main

import (
	"context"
	"fmt"
	"time"

	"salesdesk/internal/core/clock"
	"salesdesk/internal/core/types"
	"salesdesk/internal/domain/catalogs/product"
	"salesdesk/internal/domain/promotion"
	"salesdesk/internal/domain/registers/stock"
)

type demoItem struct {
	product *product.Product
	onHand  int
}

func demoCatalog() []demoItem {
	return []demoItem{
		{product.NewOfficeSupply("PEN-BLK-12", "Ballpoint pens", types.MustMoney("4.50"),
			product.OfficeSupplyAttrs{Brand: "Inkwell", PackSize: 12, Color: "black"}), 400},
		{product.NewOfficeSupply("PAPER-A4", "A4 copy paper", types.MustMoney("6.90"),
			product.OfficeSupplyAttrs{Brand: "Brightline", PackSize: 500}), 250},
		{product.NewFurniture("CHAIR-ERGO", "Ergonomic chair", types.MustMoney("189.00"),
			product.FurnitureAttrs{Material: "mesh", WidthCM: 62, DepthCM: 60, HeightCM: 118, AssemblyRequired: true}), 30},
		{product.NewFurniture("DESK-140", "Office desk", types.MustMoney("249.00"),
			product.FurnitureAttrs{Material: "oak veneer", WidthCM: 140, DepthCM: 70, HeightCM: 74, AssemblyRequired: true}), 12},
		{product.NewTechnology("MON-27", "27in monitor", types.MustMoney("299.00"),
			product.TechnologyAttrs{Brand: "Viewline", Model: "V27Q", WarrantyMonths: 36}), 20},
		{product.NewTechnology("KB-WL", "Wireless keyboard", types.MustMoney("39.00"),
			product.TechnologyAttrs{Brand: "Keyon", Model: "K2", WarrantyMonths: 12}), 80},
	}
}

// seedDemo registers a small catalog with stock and promotions running through
// the current month.
func seedDemo(ctx context.Context, products *product.Service, inventory *stock.Service, promotions *promotion.Service, now time.Time) error {
	for _, item := range demoCatalog() {
		if err := products.Register(ctx, item.product); err != nil {
			return fmt.Errorf("register %s: %w", item.product.Code, err)
		}
		if _, err := inventory.Set(ctx, item.product.Code, item.onHand, true); err != nil {
			return fmt.Errorf("stock %s: %w", item.product.Code, err)
		}
	}

	today := clock.Date(now)
	monthStart := today.AddDate(0, 0, 1-today.Day())
	monthEnd := monthStart.AddDate(0, 1, -1)

	pens := promotion.New(promotion.KindTwoForOne, types.Zero(), "PEN-BLK-12", monthStart, monthEnd)
	pens.Description = "Two packs for the price of one"

	chairs := promotion.New(promotion.KindPercentage, types.NewMoneyFromInt(15), "CHAIR-ERGO", monthStart, monthEnd)
	chairs.Description = "15% off ergonomic chairs from four units"
	chairs.Condition = "quantity >= 4"

	monitors := promotion.New(promotion.KindFixedPrice, types.MustMoney("269.00"), "MON-27", today, today.AddDate(0, 0, 7))
	monitors.Description = "Monitor week"

	for _, p := range []*promotion.Promotion{pens, chairs, monitors} {
		if err := promotions.Register(ctx, p); err != nil {
			return fmt.Errorf("promotion for %s: %w", p.ProductCode, err)
		}
	}
	return nil
}
