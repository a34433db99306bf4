package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddFoodItem   = "food item added successfully"
	MessageSuccessGetFoodItems  = "food items retrieved successfully"
	MessageSuccessRequestDelete = "deletion pending, awaiting confirmation"
	MessageSuccessConfirmDelete = "food item removed from pantry"
	MessageSuccessCancelDelete  = "deletion cancelled"
	MessageSuccessIdentifyFood  = "food identified from image"

	MessageFailedAddFoodItem  = "failed to add food item"
	MessageFailedGetFoodItems = "failed to retrieve food items"
	MessageFailedDeleteItem   = "failed to delete food item"
	MessageFailedIdentifyFood = "failed to identify food from image"

	ErrFoodItemNotFound  = errors.New("food item not found")
	ErrInvalidExpiryDate = errors.New("invalid expiry date")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrNoPendingDeletion = errors.New("no pending deletion for this item")
	ErrIdentifyFailed    = errors.New("could not extract a food item from the image")
)

type (
	AddFoodItemRequest struct {
		Name       string `json:"name" validate:"required"`
		Category   string `json:"category" validate:"required"`
		Quantity   string `json:"quantity" validate:"required"`
		ExpiryDate string `json:"expiry_date" validate:"required"`
	}

	FoodItemResponse struct {
		ID         string    `json:"id"`
		Name       string    `json:"name"`
		Category   string    `json:"category"`
		Quantity   string    `json:"quantity"`
		ExpiryDate time.Time `json:"expiry_date"`
		AddedDate  time.Time `json:"added_date"`
		StorageTip string    `json:"storage_tip,omitempty"`

		// Derived display fields, never persisted.
		UrgencyDays int    `json:"urgency_days"`
		ExpiryLabel string `json:"expiry_label"`
		Urgent      bool   `json:"urgent"`
	}

	RequestDeleteResponse struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Pending bool   `json:"pending"`
	}

	IdentifiedFood struct {
		Name       string `json:"name"`
		Quantity   string `json:"quantity"`
		Category   string `json:"category"`
		ExpiryDate string `json:"expiry_date"`
	}
)
