package services

import "parcel_market/internal/models"

// Base delivery prices in AED by delivery type. The price an order is
// created with is always computed here; client-supplied amounts are only
// checked, never trusted.
var basePrices = map[string]float64{
	string(models.DeliveryDefault):  30,
	string(models.DeliveryStandard): 30,
	string(models.DeliveryExpress):  45,
	string(models.DeliveryNextDay):  20,
	string(models.DeliveryReturn):   30,
}

// Surcharge applied uniformly when the customer wants the parcel returned.
const returnSurcharge = 10

func priceFor(deliveryType, returnType string) (float64, bool) {
	base, ok := basePrices[deliveryType]
	if !ok {
		return 0, false
	}
	switch returnType {
	case string(models.NoReturn):
		return base, true
	case string(models.WithReturn):
		return base + returnSurcharge, true
	}
	return 0, false
}
