package services

import (
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"
)

// Selection is one dish requested by a customer with the options picked for it.
type Selection struct {
	DishID  kernel.ID
	Options []order.ItemOption
}

// OrderPricer computes the total of an order from the restaurant menu.
//
// Per selection the dish price starts at the dish base price. For each
// requested option:
//   - an option the dish does not define is ignored
//   - an option with a flat extra adds that extra, whatever choice was sent
//   - otherwise a matching choice adds its own extra, if any
//
// Example:
//
//	total, items, err := services.NewOrderPricer().Price(menu, []services.Selection{
//	    {DishID: pizzaID, Options: []order.ItemOption{{Name: "size", Choice: &large}}},
//	})
type OrderPricer struct{}

// NewOrderPricer returns a stateless pricer. The zero value works too.
func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// Price returns the order total and one item per selection, in selection order.
// A selection referencing a dish outside menu fails the whole order with an
// ObjectNotFoundError. An empty selection list yields a zero total.
func (p OrderPricer) Price(menu []*restaurant.Dish, selections []Selection) (kernel.Price, []order.Item, error) {
	dishes := make(map[int64]*restaurant.Dish, len(menu))
	for _, d := range menu {
		dishes[d.ID().Int64()] = d
	}

	var total kernel.Price
	items := make([]order.Item, 0, len(selections))
	for _, sel := range selections {
		dish, ok := dishes[sel.DishID.Int64()]
		if !ok {
			return kernel.Price{}, nil, errs.NewObjectNotFoundError("dish", sel.DishID.String())
		}

		total = total.Add(p.DishPrice(dish, sel.Options))

		item, err := order.NewItem(dish.ID(), sel.Options)
		if err != nil {
			return kernel.Price{}, nil, err
		}
		items = append(items, item)
	}

	return total, items, nil
}

// DishPrice resolves the price of one dish with the requested options.
func (p OrderPricer) DishPrice(dish *restaurant.Dish, requested []order.ItemOption) kernel.Price {
	price := dish.Price()
	for _, req := range requested {
		option, ok := dish.FindOption(req.Name)
		if !ok {
			continue
		}

		if option.HasFlatExtra() {
			price = price.Add(*option.Extra)
			continue
		}

		if req.Choice == nil {
			continue
		}
		if choice, found := option.FindChoice(*req.Choice); found && choice.Extra != nil {
			price = price.Add(*choice.Extra)
		}
	}
	return price
}
