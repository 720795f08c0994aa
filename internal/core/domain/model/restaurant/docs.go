// Package restaurant provides the restaurant aggregate, its menu of dishes and
// the category catalog.
//
// Key business rules:
//   - A restaurant has exactly one owner
//   - A dish belongs to one restaurant and carries a base price plus options
//   - A dish option is priced either by a flat extra or by its choices
//   - A paid promotion lasts seven days and is lifted by a scheduled job
//   - Category names are stored lowercased; the slug replaces spaces with dashes
//
// # Editing
//
// Restaurant.Edit and Dish.Edit take a set of optional changes. Fields left
// nil keep their value. The changes are validated together and applied only
// when every one of them is valid:
//
//	name := "Pizza Palace"
//	if err := r.Edit(restaurant.RestaurantChanges{Name: &name}); err != nil {
//		return err // r is unchanged
//	}
package restaurant
