package shoppinglist

import (
	"family-foodie/domain"
	"family-foodie/entities"
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ShoppingListService interface {
		GetShoppingList(ctx context.Context, householdID string, week, year int) (domain.ShoppingListResponse, error)
		GenerateShoppingList(ctx context.Context, householdID string, week, year int) (domain.ShoppingListResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateListItemRequest, householdID string) error
		AddItem(ctx context.Context, req domain.AddListItemRequest, householdID string, week, year int) (domain.ShoppingListItemResponse, error)
		DeleteItem(ctx context.Context, id string, householdID string) error
	}

	shoppingListService struct {
		shoppingListRepository ShoppingListRepository
	}
)

func NewShoppingListService(shoppingListRepository ShoppingListRepository) ShoppingListService {
	return &shoppingListService{shoppingListRepository: shoppingListRepository}
}

func toItemResponse(item *entities.ShoppingListItem) domain.ShoppingListItemResponse {
	res := domain.ShoppingListItemResponse{
		ID:        item.ID.String(),
		Name:      item.Name,
		Quantity:  item.Quantity,
		Cost:      item.Cost,
		StockCode: item.StockCode,
		Purchased: item.Purchased,
		Fresh:     item.Fresh,
		SortOrder: item.SortOrder,
	}
	if item.IngredientID != nil {
		res.IngredientID = item.IngredientID.String()
	}
	return res
}

func (s *shoppingListService) buildResponse(items []*entities.ShoppingListItem, week, year int) domain.ShoppingListResponse {
	response := domain.ShoppingListResponse{
		Week:  week,
		Year:  year,
		Items: make([]domain.ShoppingListItemResponse, 0, len(items)),
	}
	for _, item := range items {
		response.Items = append(response.Items, toItemResponse(item))
		response.TotalCost += item.Cost
	}
	return response
}

func (s *shoppingListService) GetShoppingList(ctx context.Context, householdID string, week, year int) (domain.ShoppingListResponse, error) {
	if week < 1 || week > 53 {
		return domain.ShoppingListResponse{}, domain.ErrInvalidWeek
	}

	items, err := s.shoppingListRepository.GetItems(ctx, householdID, week, year)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}
	return s.buildResponse(items, week, year), nil
}

// GenerateShoppingList materializes the week's list from the planned
// recipes. Duplicate ingredients across recipes collapse into one row with
// summed quantities; rows already marked purchased are left alone and their
// ingredients are not re-added.
func (s *shoppingListService) GenerateShoppingList(ctx context.Context, householdID string, week, year int) (domain.ShoppingListResponse, error) {
	if week < 1 || week > 53 {
		return domain.ShoppingListResponse{}, domain.ErrInvalidWeek
	}

	householdUUID, err := uuid.Parse(householdID)
	if err != nil {
		return domain.ShoppingListResponse{}, domain.ErrParseUUID
	}

	lines, err := s.shoppingListRepository.GetPlannedIngredientLines(ctx, householdID, week, year)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}
	if len(lines) == 0 {
		return domain.ShoppingListResponse{}, domain.ErrNoPlannedRecipes
	}

	existing, err := s.shoppingListRepository.GetItems(ctx, householdID, week, year)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}
	purchased := make(map[uuid.UUID]bool)
	for _, item := range existing {
		if item.Purchased && item.IngredientID != nil {
			purchased[*item.IngredientID] = true
		}
	}

	items := aggregateLines(lines, purchased)
	for _, item := range items {
		item.HouseholdID = householdUUID
		item.Week = week
		item.Year = year
	}

	if err := s.shoppingListRepository.RegenerateItems(ctx, householdUUID, week, year, items); err != nil {
		return domain.ShoppingListResponse{}, err
	}

	refreshed, err := s.shoppingListRepository.GetItems(ctx, householdID, week, year)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}
	return s.buildResponse(refreshed, week, year), nil
}

// aggregateLines collapses recipe ingredient lines into one shopping list
// row per ingredient, summing the four-person quantities. Ingredients whose
// rows were already purchased are skipped. Fresh ingredients sort first.
func aggregateLines(lines []*entities.RecipeIngredient, alreadyPurchased map[uuid.UUID]bool) []*entities.ShoppingListItem {
	type aggregate struct {
		item     *entities.ShoppingListItem
		quantity float64
		unit     string
	}
	byIngredient := make(map[uuid.UUID]*aggregate)
	order := make([]uuid.UUID, 0, len(lines))

	for _, line := range lines {
		if line.Ingredient == nil || alreadyPurchased[line.IngredientID] {
			continue
		}

		agg, ok := byIngredient[line.IngredientID]
		if !ok {
			ingredientID := line.IngredientID
			agg = &aggregate{
				item: &entities.ShoppingListItem{
					ID:           uuid.New(),
					IngredientID: &ingredientID,
					Name:         line.Ingredient.Name,
					Cost:         line.Ingredient.Cost,
					StockCode:    line.Ingredient.StockCode,
					Fresh:        line.Ingredient.Fresh,
				},
			}
			if line.Measurement != nil {
				agg.unit = line.Measurement.Name
			}
			byIngredient[line.IngredientID] = agg
			order = append(order, line.IngredientID)
		}
		agg.quantity += line.Quantity4
	}

	items := make([]*entities.ShoppingListItem, 0, len(order))
	for _, id := range order {
		agg := byIngredient[id]
		agg.item.Quantity = formatQuantity(agg.quantity, agg.unit)
		items = append(items, agg.item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Fresh != items[j].Fresh {
			return items[i].Fresh
		}
		return items[i].Name < items[j].Name
	})
	for i, item := range items {
		item.SortOrder = i
	}
	return items
}

func formatQuantity(quantity float64, unit string) string {
	if quantity == 0 {
		return ""
	}
	formatted := strconv.FormatFloat(quantity, 'f', -1, 64)
	if unit == "" {
		return formatted
	}
	return strings.TrimSpace(formatted + " " + unit)
}

func (s *shoppingListService) UpdateItem(ctx context.Context, id string, req domain.UpdateListItemRequest, householdID string) error {
	item, err := s.shoppingListRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrListItemNotFound
		}
		return err
	}

	if item.HouseholdID.String() != householdID {
		return domain.ErrListItemNotOwned
	}

	if req.Purchased != nil {
		item.Purchased = *req.Purchased
	}
	if req.Cost != nil {
		item.Cost = *req.Cost
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}

	return s.shoppingListRepository.UpdateItem(ctx, item)
}

func (s *shoppingListService) AddItem(ctx context.Context, req domain.AddListItemRequest, householdID string, week, year int) (domain.ShoppingListItemResponse, error) {
	if week < 1 || week > 53 {
		return domain.ShoppingListItemResponse{}, domain.ErrInvalidWeek
	}

	householdUUID, err := uuid.Parse(householdID)
	if err != nil {
		return domain.ShoppingListItemResponse{}, domain.ErrParseUUID
	}

	item := &entities.ShoppingListItem{
		ID:          uuid.New(),
		HouseholdID: householdUUID,
		Week:        week,
		Year:        year,
		Name:        req.Name,
		Quantity:    req.Quantity,
		Cost:        req.Cost,
		Fresh:       req.Fresh,
	}
	if err := s.shoppingListRepository.CreateItem(ctx, item); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	return toItemResponse(item), nil
}

func (s *shoppingListService) DeleteItem(ctx context.Context, id string, householdID string) error {
	item, err := s.shoppingListRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrListItemNotFound
		}
		return err
	}

	if item.HouseholdID.String() != householdID {
		return domain.ErrListItemNotOwned
	}

	return s.shoppingListRepository.DeleteItem(ctx, id)
}
