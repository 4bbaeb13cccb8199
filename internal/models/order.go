// Package models содержит доменные структуры заказов и аккаунтов продавца,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import (
	"fmt"
	"time"
)

// OrderStatus — закрытый набор статусов заказа.
// Любое другое значение считается ошибкой валидации,
// неизвестный статус нигде молча не приводится к значению по умолчанию.
type OrderStatus string

const (
	// StatusNew — новый, ещё не подтверждённый заказ.
	StatusNew OrderStatus = "New"
	// StatusConfirmed — заказ подтверждён продавцом.
	StatusConfirmed OrderStatus = "Confirmed"
	// StatusPacked — заказ упакован (только физические товары).
	StatusPacked OrderStatus = "Packed"
	// StatusShipped — заказ отправлен (только физические товары).
	StatusShipped OrderStatus = "Shipped"
	// StatusDelivered — заказ доставлен, терминальный статус.
	StatusDelivered OrderStatus = "Delivered"
	// StatusCancelled — заказ отменён, исключается из выручки.
	StatusCancelled OrderStatus = "Cancelled"
)

// ParseOrderStatus преобразует строку в OrderStatus.
// Возвращает ошибку для любого неизвестного значения.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusNew, StatusConfirmed, StatusPacked, StatusShipped, StatusDelivered, StatusCancelled:
		return OrderStatus(s), nil
	default:
		return "", fmt.Errorf("unknown order status: %q", s)
	}
}

// IsTerminal сообщает, завершён ли заказ (доставлен или отменён).
// Остальные статусы означают, что заказ требует действий продавца.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ProductType — тип товара в заказе.
type ProductType string

const (
	// TypePhysical — физический товар, проходит через Packed/Shipped.
	TypePhysical ProductType = "Physical"
	// TypeDigital — цифровой товар, завершается сразу статусом Delivered.
	TypeDigital ProductType = "Digital"
)

// ParseProductType преобразует строку в ProductType.
// Возвращает ошибку для любого неизвестного значения.
func ParseProductType(s string) (ProductType, error) {
	switch ProductType(s) {
	case TypePhysical, TypeDigital:
		return ProductType(s), nil
	default:
		return "", fmt.Errorf("unknown product type: %q", s)
	}
}

// Order представляет один заказ покупателя.
// Поле Date — бизнес-дата заказа (календарный день без времени),
// по ней строится вся аналитика выручки. CreatedAt/UpdatedAt — служебные
// временные метки записи и с бизнес-датой не связаны.
type Order struct {
	ID             string      `json:"id"`
	AccountUID     string      `json:"account_uid"`
	Type           ProductType `json:"type"`
	CustomerName   string      `json:"customer_name"`
	Phone          string      `json:"phone"`
	Address        string      `json:"address,omitempty"`
	Product        string      `json:"product"`
	Quantity       int         `json:"quantity"`
	Price          float64     `json:"price"`
	Total          float64     `json:"total"` // Всегда равно Quantity * Price на момент записи
	Status         OrderStatus `json:"status"`
	TrackingNumber string      `json:"tracking_number,omitempty"`
	Date           time.Time   `json:"date"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// DummyOrder используется для приёма данных заказа из JSON-запроса
// до их валидации и преобразования в Order. Дата приходит строкой
// в формате 2006-01-02, статус и тип — строками.
type DummyOrder struct {
	Type           string  `json:"type" validate:"required"`
	CustomerName   string  `json:"customer_name" validate:"required"`
	Phone          string  `json:"phone" validate:"required"`
	Address        string  `json:"address,omitempty" validate:"omitempty"`
	Product        string  `json:"product" validate:"required"`
	Quantity       int     `json:"quantity" validate:"required,gte=1"`
	Price          float64 `json:"price" validate:"gte=0"`
	Status         string  `json:"status" validate:"required"`
	TrackingNumber string  `json:"tracking_number,omitempty" validate:"omitempty"`
	Date           string  `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
