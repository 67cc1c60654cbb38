package put_measurement

// PutMeasurementRequest HTTP запрос на сохранение показателя
type PutMeasurementRequest struct {
	Value string `json:"value"`
}
