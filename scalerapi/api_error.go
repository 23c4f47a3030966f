package scalerapi

type APIError struct {
	description string
}

func NewAPIError(description string) error {
	return APIError{description}
}

func (e APIError) Error() string {
	return e.description
}
