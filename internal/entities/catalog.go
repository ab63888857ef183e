package entities

// ServiceCategory groups the resources that offer one category of service.
type ServiceCategory struct {
	Name      string   `json:"name"`
	Resources []string `json:"resources"`
}

// ServiceCatalog is the static offering returned by get_services.
type ServiceCatalog struct {
	Title      string            `json:"title"`
	Categories []ServiceCategory `json:"categories"`
	Hours      string            `json:"hours"`
	Contact    string            `json:"contact"`
}
