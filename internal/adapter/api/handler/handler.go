package handler

import (
	"localmarket/internal/usecase"
)

var (
	userHandler          *UserHandler
	productHandler       *ProductHandler
	reviewHandler        *ReviewHandler
	advertisementHandler *AdvertisementHandler
	orderHandler         *OrderHandler
	watchlistHandler     *WatchlistHandler
	checkoutHandler      *CheckoutHandler
)

func Setup(
	userUseCase *usecase.UserUseCase,
	productUseCase *usecase.ProductUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	advertisementUseCase *usecase.AdvertisementUseCase,
	orderUseCase *usecase.OrderUseCase,
	watchlistUseCase *usecase.WatchlistUseCase,
	checkoutUseCase *usecase.CheckoutUseCase,
) {
	userHandler = NewUserHandler(userUseCase)
	productHandler = NewProductHandler(productUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	advertisementHandler = NewAdvertisementHandler(advertisementUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	watchlistHandler = NewWatchlistHandler(watchlistUseCase)
	checkoutHandler = NewCheckoutHandler(checkoutUseCase)
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetAdvertisementHandler() *AdvertisementHandler {
	return advertisementHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetWatchlistHandler() *WatchlistHandler {
	return watchlistHandler
}

func GetCheckoutHandler() *CheckoutHandler {
	return checkoutHandler
}
