package impl

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

type categoryService struct {
	stores repository.Stores
}

// NewCategoryService creates a new category service instance
func NewCategoryService(stores repository.Stores) usecase.CategoryUsecase {
	return &categoryService{stores: stores}
}

// GetAllCategories retrieves every category, sorted by name
func (s *categoryService) GetAllCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.stores.Categories().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	sortByName(categories)

	return categories, nil
}

// GetRootCategories retrieves categories without a parent, sorted by name
func (s *categoryService) GetRootCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.stores.Categories().FindMany(ctx,
		repository.Eq("parent_category_id", uuid.Nil))
	if err != nil {
		return nil, fmt.Errorf("failed to get root categories: %w", err)
	}
	sortByName(categories)

	return categories, nil
}

// checkParentExists upholds the invariant that a non-root category references
// an existing parent.
func (s *categoryService) checkParentExists(ctx context.Context, parentID uuid.UUID) error {
	if parentID == uuid.Nil {
		return nil
	}

	_, err := s.stores.Categories().Find(ctx, repository.Eq("id", parentID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrParentCategoryNotFound
		}

		return fmt.Errorf("failed to find parent category: %w", err)
	}

	return nil
}

func sortByName(categories []*entity.Category) {
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
}

// GetCategoryByID retrieves a single category by its ID, or nil when absent.
// The zero id means "no selection" and resolves to nil without a lookup.
func (s *categoryService) GetCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	if id == uuid.Nil {
		return nil, nil
	}

	category, err := s.stores.Categories().Find(ctx, repository.Eq("id", id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find category by id: %w", err)
	}

	return category, nil
}

// GetCategoryBySeo retrieves a single category by its SEO slug, or nil when
// absent. An empty slug means the category is not addressable, so "" resolves
// to nil without a lookup.
func (s *categoryService) GetCategoryBySeo(ctx context.Context, seoSlug string) (*entity.Category, error) {
	if seoSlug == "" {
		return nil, nil
	}

	category, err := s.stores.Categories().Find(ctx, repository.Eq("seo_slug", seoSlug))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find category by seo slug: %w", err)
	}

	return category, nil
}

// InsertCategory persists a new category
func (s *categoryService) InsertCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	if input == nil {
		return nil, domainerrors.ErrNilEntity
	}
	if err := s.checkParentExists(ctx, input.ParentCategoryID); err != nil {
		return nil, err
	}

	now := time.Now()
	category := &entity.Category{
		ID:               uuid.New(),
		Name:             input.Name,
		SeoSlug:          input.SeoSlug,
		ParentCategoryID: input.ParentCategoryID,
		Published:        input.Published,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	store := s.stores.Categories()
	if err := store.Insert(category); err != nil {
		return nil, fmt.Errorf("failed to stage category insert: %w", err)
	}
	if err := store.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to insert category: %w", err)
	}

	return category, nil
}

// UpdateCategory overwrites an existing category
func (s *categoryService) UpdateCategory(ctx context.Context, category *entity.Category) error {
	if category == nil {
		return domainerrors.ErrNilEntity
	}
	if err := s.checkParentExists(ctx, category.ParentCategoryID); err != nil {
		return err
	}

	category.UpdatedAt = time.Now()

	store := s.stores.Categories()
	if err := store.Update(category); err != nil {
		return fmt.Errorf("failed to stage category update: %w", err)
	}
	if err := store.Commit(ctx); err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	return nil
}

// DeleteCategories removes the categories with the given IDs. IDs that no
// longer resolve are skipped rather than failing the whole batch; an empty
// batch is a no-op.
func (s *categoryService) DeleteCategories(ctx context.Context, ids []uuid.UUID) error {
	if ids == nil {
		return domainerrors.ErrNilIDList
	}

	store := s.stores.Categories()
	staged := 0
	for _, id := range ids {
		category, err := store.Find(ctx, repository.Eq("id", id))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return fmt.Errorf("failed to find category by id: %w", err)
		}
		if err := store.Delete(category); err != nil {
			return fmt.Errorf("failed to stage category delete: %w", err)
		}
		staged++
	}
	if staged == 0 {
		return nil
	}
	if err := store.Commit(ctx); err != nil {
		return fmt.Errorf("failed to delete categories: %w", err)
	}

	return nil
}

// GetMappingsByProductID retrieves the category assignments of a product
func (s *categoryService) GetMappingsByProductID(ctx context.Context, productID uuid.UUID) ([]*entity.ProductCategoryMapping, error) {
	if productID == uuid.Nil {
		return nil, domainerrors.ErrEmptyProductID
	}

	mappings, err := s.stores.ProductCategoryMappings().FindMany(ctx,
		repository.Eq("product_id", productID))
	if err != nil {
		return nil, fmt.Errorf("failed to find mappings by product id: %w", err)
	}

	return mappings, nil
}

// InsertProductCategoryMappings persists a batch of assignments atomically.
// An empty batch is a no-op.
func (s *categoryService) InsertProductCategoryMappings(ctx context.Context, inputs []*usecase.MappingInput) error {
	if inputs == nil {
		return domainerrors.ErrNilEntity
	}

	store := s.stores.ProductCategoryMappings()
	for _, input := range inputs {
		if input == nil {
			return domainerrors.ErrNilEntity
		}
		mapping := &entity.ProductCategoryMapping{
			ID:         uuid.New(),
			ProductID:  input.ProductID,
			CategoryID: input.CategoryID,
		}
		if err := store.Insert(mapping); err != nil {
			return fmt.Errorf("failed to stage mapping insert: %w", err)
		}
	}
	if err := store.Commit(ctx); err != nil {
		return fmt.Errorf("failed to insert mappings: %w", err)
	}

	return nil
}

// DeleteProductCategoryMappingsByProductID removes every assignment of a product
func (s *categoryService) DeleteProductCategoryMappingsByProductID(ctx context.Context, productID uuid.UUID) error {
	if productID == uuid.Nil {
		return domainerrors.ErrEmptyProductID
	}

	store := s.stores.ProductCategoryMappings()
	mappings, err := store.FindMany(ctx, repository.Eq("product_id", productID))
	if err != nil {
		return fmt.Errorf("failed to find mappings by product id: %w", err)
	}
	if len(mappings) == 0 {
		return nil
	}
	for _, mapping := range mappings {
		if err := store.Delete(mapping); err != nil {
			return fmt.Errorf("failed to stage mapping delete: %w", err)
		}
	}
	if err := store.Commit(ctx); err != nil {
		return fmt.Errorf("failed to delete mappings: %w", err)
	}

	return nil
}
