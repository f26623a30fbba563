package repo

// InMemoryStatsRepository aggregates counts from the in-memory repositories.
type InMemoryStatsRepository struct {
	productRepo *InMemoryProductRepository
	serviceRepo *InMemoryServiceRepository
	settingRepo *InMemorySettingRepository
	menuRepo    *InMemoryMenuRepository
}

func NewInMemoryStatsRepository() *InMemoryStatsRepository {
	return &InMemoryStatsRepository{}
}

func (r *InMemoryStatsRepository) SetRepositories(
	productRepo *InMemoryProductRepository,
	serviceRepo *InMemoryServiceRepository,
	settingRepo *InMemorySettingRepository,
	menuRepo *InMemoryMenuRepository,
) {
	r.productRepo = productRepo
	r.serviceRepo = serviceRepo
	r.settingRepo = settingRepo
	r.menuRepo = menuRepo
}

func (r *InMemoryStatsRepository) Ping() error {
	return nil
}

func (r *InMemoryStatsRepository) Counts() (RecordCounts, error) {
	return RecordCounts{
		Products: r.productRepo.Count(),
		Services: r.serviceRepo.Count(),
		Settings: r.settingRepo.Count(),
		Menus:    r.menuRepo.Count(),
	}, nil
}
