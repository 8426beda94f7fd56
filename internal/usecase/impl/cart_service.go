package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// addToCartAttempts bounds the retries of an add that lost a race to
// create the same line.
const addToCartAttempts = 2

type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	catalog   service.ProductCatalog
	logger    *slog.Logger
	now       func() time.Time
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	Catalog   service.ProductCatalog
	Logger    *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		catalog:   params.Catalog,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (s *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetCart returns the user's cart, creating it on first access
func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return s.getOrCreateCart(ctx, userID)
}

// getOrCreateCart is idempotent. Two first accesses racing to create the
// cart both end up reading the single row the unique index lets through.
func (s *cartService) getOrCreateCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.cartRepo.FindCartByUser(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	now := s.now()
	cart = &entity.Cart{
		ID:        uuid.New(),
		UserID:    userID,
		Items:     []*entity.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.cartRepo.CreateCart(ctx, cart)
	if errors.Is(err, repository.ErrCartExists) {
		s.log(ctx).Debug("Cart created concurrently, reading it back", slog.String("userID", userID.String()))

		cart, err = s.cartRepo.FindCartByUser(ctx, userID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read concurrently created cart")
		}

		return cart, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}

	return cart, nil
}

// AddToCart adds a product to the cart. Re-adding a product sums the
// quantities and keeps the unit price captured by the first add.
func (s *cartService) AddToCart(ctx context.Context, userID uuid.UUID, input usecase.AddToCartInput) (*entity.Cart, error) {
	if input.Quantity <= 0 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	info, err := s.catalog.GetProductInfo(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("failed to add product " + input.ProductID.String())
		}

		return nil, errors.Wrap(err, "failed to load product info")
	}
	if !info.IsAvailable {
		return nil, domainerrors.ErrProductUnavailable.WrapMessage("failed to add product " + input.ProductID.String())
	}

	if _, err := s.getOrCreateCart(ctx, userID); err != nil {
		return nil, err
	}

	var cart *entity.Cart
	for attempt := 1; ; attempt++ {
		cart, err = s.addLine(ctx, userID, info, input.Quantity)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrCartItemExists) || attempt >= addToCartAttempts {
			return nil, err
		}
		s.log(ctx).Debug("Cart line created concurrently, merging", slog.String("productID", info.ID.String()))
	}

	s.log(ctx).Info("Product added to cart",
		slog.String("userID", userID.String()),
		slog.String("productID", info.ID.String()),
		slog.Int("quantity", input.Quantity),
	)

	return cart, nil
}

func (s *cartService) addLine(ctx context.Context, userID uuid.UUID, info *entity.ProductInfo, quantity int) (*entity.Cart, error) {
	var cart *entity.Cart
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		cartRepo := txRepoFactory.NewCartRepository()

		var err error
		cart, err = cartRepo.FindCartByUserForUpdate(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find cart")
		}

		now := s.now()
		if item := cart.FindItem(info.ID); item != nil {
			merged := item.Quantity + quantity
			if err := cartRepo.UpdateCartItemQuantity(ctx, item.ID, merged); err != nil {
				return errors.Wrap(err, "failed to merge cart line")
			}
			item.Quantity = merged
			item.UpdatedAt = now
		} else {
			item := &entity.CartItem{
				ID:        uuid.New(),
				CartID:    cart.ID,
				ProductID: info.ID,
				ShopID:    info.ShopID,
				Name:      info.Name,
				Quantity:  quantity,
				UnitPrice: info.Price,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := cartRepo.CreateCartItem(ctx, item); err != nil {
				if errors.Is(err, repository.ErrCartItemExists) {
					return err
				}

				return errors.Wrap(err, "failed to create cart line")
			}
			cart.Items = append(cart.Items, item)
		}

		return s.touch(ctx, cartRepo, cart, now)
	})
	if err != nil {
		return nil, err
	}

	return cart, nil
}

// UpdateQuantity overwrites a line's quantity; zero or less deletes the line
func (s *cartService) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.Cart, error) {
	if quantity <= 0 {
		return s.RemoveFromCart(ctx, userID, productID)
	}

	var cart *entity.Cart
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		cartRepo := txRepoFactory.NewCartRepository()

		var (
			item *entity.CartItem
			err  error
		)
		cart, item, err = findCartLine(ctx, cartRepo, userID, productID)
		if err != nil {
			return err
		}

		if err := cartRepo.UpdateCartItemQuantity(ctx, item.ID, quantity); err != nil {
			return errors.Wrap(err, "failed to update cart line")
		}
		now := s.now()
		item.Quantity = quantity
		item.UpdatedAt = now

		return s.touch(ctx, cartRepo, cart, now)
	})
	if err != nil {
		return nil, err
	}

	return cart, nil
}

// RemoveFromCart deletes the line holding productID
func (s *cartService) RemoveFromCart(ctx context.Context, userID, productID uuid.UUID) (*entity.Cart, error) {
	var cart *entity.Cart
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		cartRepo := txRepoFactory.NewCartRepository()

		var err error
		cart, _, err = findCartLine(ctx, cartRepo, userID, productID)
		if err != nil {
			return err
		}

		if err := cartRepo.DeleteCartItem(ctx, cart.ID, productID); err != nil {
			if errors.Is(err, repository.ErrCartItemNotFound) {
				return domainerrors.ErrCartItemNotFound
			}

			return errors.Wrap(err, "failed to delete cart line")
		}
		cart.Items = removeLine(cart.Items, productID)

		return s.touch(ctx, cartRepo, cart, s.now())
	})
	if err != nil {
		return nil, err
	}

	return cart, nil
}

// ClearCart removes every line of the user's cart
func (s *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	return s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		cartRepo := txRepoFactory.NewCartRepository()

		cart, err := cartRepo.FindCartByUserForUpdate(ctx, userID)
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find cart")
		}

		return clearCart(ctx, cartRepo, cart, s.now())
	})
}

// clearCart empties a loaded cart with the given repository. Checkout calls
// it with its own transaction's repository.
func clearCart(ctx context.Context, cartRepo repository.CartRepository, cart *entity.Cart, now time.Time) error {
	if err := cartRepo.DeleteCartItems(ctx, cart.ID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}
	if err := cartRepo.TouchCart(ctx, cart.ID, now); err != nil {
		return errors.Wrap(err, "failed to touch cart")
	}
	cart.Items = []*entity.CartItem{}
	cart.UpdatedAt = now

	return nil
}

func (s *cartService) touch(ctx context.Context, cartRepo repository.CartRepository, cart *entity.Cart, now time.Time) error {
	if err := cartRepo.TouchCart(ctx, cart.ID, now); err != nil {
		return errors.Wrap(err, "failed to touch cart")
	}
	cart.UpdatedAt = now

	return nil
}

func findCartLine(ctx context.Context, cartRepo repository.CartRepository, userID, productID uuid.UUID) (*entity.Cart, *entity.CartItem, error) {
	cart, err := cartRepo.FindCartByUserForUpdate(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, nil, domainerrors.ErrCartItemNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find cart")
	}

	item := cart.FindItem(productID)
	if item == nil {
		return nil, nil, domainerrors.ErrCartItemNotFound
	}

	return cart, item, nil
}

func removeLine(items []*entity.CartItem, productID uuid.UUID) []*entity.CartItem {
	kept := make([]*entity.CartItem, 0, len(items))
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}

	return kept
}
