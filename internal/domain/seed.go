package domain

import "time"

// Seed data used when no durable snapshot exists yet. Mirrors the demo
// dataset the tool ships with; all derived numbers satisfy their formulas.

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

func SeedClients() []Client {
	return []Client{
		{ID: "client-1", Name: "Mehmet Kaya", Email: "mehmet@acmeinc.com", Phone: "+90 533 111 2222", Company: "ACME Inc.", Address: "Levent, İstanbul", Status: ClientActive, TotalProjects: 2, TotalRevenue: 245000, CreatedAt: day(2024, 1, 15)},
		{ID: "client-2", Name: "Ayşe Demir", Email: "ayse@techflow.io", Phone: "+90 534 222 3333", Company: "TechFlow", Address: "Kadıköy, İstanbul", Status: ClientActive, TotalProjects: 1, TotalRevenue: 200000, CreatedAt: day(2024, 2, 20)},
		{ID: "client-3", Name: "Ali Öztürk", Email: "ali@globalunion.org", Phone: "+90 535 333 4444", Company: "Global Union", Address: "Çankaya, Ankara", Status: ClientActive, TotalProjects: 1, TotalRevenue: 45000, CreatedAt: day(2024, 3, 10)},
		{ID: "client-4", Name: "Zeynep Arslan", Email: "zeynep@codecraft.dev", Phone: "+90 536 444 5555", Company: "CodeCraft", Address: "Alsancak, İzmir", Status: ClientInactive, TotalProjects: 0, TotalRevenue: 0, CreatedAt: day(2024, 4, 5)},
		{ID: "client-5", Name: "Can Yıldız", Email: "can@digitalnexus.co", Phone: "+90 537 555 6666", Company: "Digital Nexus", Address: "Beşiktaş, İstanbul", Status: ClientActive, TotalProjects: 2, TotalRevenue: 195000, CreatedAt: day(2024, 5, 12)},
	}
}

func SeedProjects() []Project {
	return []Project{
		{
			ID: "proj-1", Name: "E-Ticaret Platformu",
			Description: "Kapsamlı bir e-ticaret platformu: ürün yönetimi, sepet, ödeme entegrasyonu ve admin paneli.",
			ClientRef:   ClientRef{ClientID: "client-1", ClientName: "ACME Inc."},
			Status:      ProjectInProgress, StartDate: day(2024, 6, 1), EndDate: day(2024, 9, 30),
			Budget: 150000, Progress: 65,
			Tasks: []Task{
				{ID: "t1", Title: "Veritabanı tasarımı", Completed: true},
				{ID: "t2", Title: "API geliştirme", Completed: true},
				{ID: "t3", Title: "Frontend geliştirme", Completed: false},
				{ID: "t4", Title: "Ödeme entegrasyonu", Completed: false},
				{ID: "t5", Title: "Test ve QA", Completed: false},
			},
			CreatedAt: day(2024, 5, 15),
		},
		{
			ID: "proj-2", Name: "Mobil Uygulama",
			Description: "iOS ve Android için native mobil uygulama geliştirme.",
			ClientRef:   ClientRef{ClientID: "client-2", ClientName: "TechFlow"},
			Status:      ProjectPlanning, StartDate: day(2024, 8, 1), EndDate: day(2024, 12, 31),
			Budget: 200000, Progress: 10,
			Tasks: []Task{
				{ID: "t1", Title: "Gereksinim analizi", Completed: true},
				{ID: "t2", Title: "UI/UX tasarımı", Completed: false},
				{ID: "t3", Title: "iOS geliştirme", Completed: false},
				{ID: "t4", Title: "Android geliştirme", Completed: false},
			},
			CreatedAt: day(2024, 7, 1),
		},
		{
			ID: "proj-3", Name: "CRM Sistemi",
			Description: "Özelleştirilmiş müşteri ilişkileri yönetim sistemi.",
			ClientRef:   ClientRef{ClientID: "client-1", ClientName: "ACME Inc."},
			Status:      ProjectCompleted, StartDate: day(2024, 1, 15), EndDate: day(2024, 5, 30),
			Budget: 95000, Progress: 100,
			Tasks: []Task{
				{ID: "t1", Title: "Analiz", Completed: true},
				{ID: "t2", Title: "Geliştirme", Completed: true},
				{ID: "t3", Title: "Test", Completed: true},
				{ID: "t4", Title: "Deployment", Completed: true},
			},
			CreatedAt: day(2024, 1, 10),
		},
		{
			ID: "proj-4", Name: "Web Sitesi Yenileme",
			Description: "Kurumsal web sitesi modern tasarım ile yenileme.",
			ClientRef:   ClientRef{ClientID: "client-3", ClientName: "Global Union"},
			Status:      ProjectReview, StartDate: day(2024, 7, 1), EndDate: day(2024, 8, 15),
			Budget: 45000, Progress: 85,
			Tasks: []Task{
				{ID: "t1", Title: "Tasarım", Completed: true},
				{ID: "t2", Title: "Geliştirme", Completed: true},
				{ID: "t3", Title: "İçerik girişi", Completed: true},
				{ID: "t4", Title: "Son kontroller", Completed: false},
			},
			CreatedAt: day(2024, 6, 20),
		},
		{
			ID: "proj-5", Name: "API Entegrasyonu",
			Description: "Üçüncü parti API entegrasyonları ve otomasyon.",
			ClientRef:   ClientRef{ClientID: "client-5", ClientName: "Digital Nexus"},
			Status:      ProjectInProgress, StartDate: day(2024, 7, 15), EndDate: day(2024, 9, 15),
			Budget: 75000, Progress: 40,
			Tasks: []Task{
				{ID: "t1", Title: "API analizi", Completed: true},
				{ID: "t2", Title: "Entegrasyon geliştirme", Completed: false},
				{ID: "t3", Title: "Test", Completed: false},
			},
			CreatedAt: day(2024, 7, 10),
		},
		{
			ID: "proj-6", Name: "Dashboard Geliştirme",
			Description: "Veri analitik dashboard geliştirme projesi.",
			ClientRef:   ClientRef{ClientID: "client-5", ClientName: "Digital Nexus"},
			Status:      ProjectOnHold, StartDate: day(2024, 9, 1), EndDate: day(2024, 11, 30),
			Budget: 120000, Progress: 0,
			CreatedAt: day(2024, 8, 1),
		},
	}
}

func SeedProposals() []Proposal {
	return []Proposal{
		{
			ID: "prop-1", Number: "TEK-2024-001",
			ClientRef:   ClientRef{ClientID: "client-2", ClientName: "TechFlow"},
			ProjectName: "Mobil Uygulama",
			Description: "iOS ve Android mobil uygulama geliştirme teklifi.",
			Amount:      200000, Status: ProposalAccepted, ValidUntil: day(2024, 8, 15),
			Items: []ProposalItem{
				{ID: "i1", Description: "UI/UX Tasarım", Quantity: 1, UnitPrice: 30000, Total: 30000},
				{ID: "i2", Description: "iOS Geliştirme", Quantity: 1, UnitPrice: 75000, Total: 75000},
				{ID: "i3", Description: "Android Geliştirme", Quantity: 1, UnitPrice: 75000, Total: 75000},
				{ID: "i4", Description: "Test ve QA", Quantity: 1, UnitPrice: 20000, Total: 20000},
			},
			CreatedAt: day(2024, 7, 1),
		},
		{
			ID: "prop-2", Number: "TEK-2024-002",
			ClientRef:   ClientRef{ClientID: "client-3", ClientName: "Global Union"},
			ProjectName: "Web Sitesi Yenileme",
			Description: "Kurumsal web sitesi yenileme ve modernizasyon teklifi.",
			Amount:      45000, Status: ProposalAccepted, ValidUntil: day(2024, 7, 15),
			Items: []ProposalItem{
				{ID: "i1", Description: "Tasarım", Quantity: 1, UnitPrice: 15000, Total: 15000},
				{ID: "i2", Description: "Geliştirme", Quantity: 1, UnitPrice: 25000, Total: 25000},
				{ID: "i3", Description: "SEO Optimizasyonu", Quantity: 1, UnitPrice: 5000, Total: 5000},
			},
			CreatedAt: day(2024, 6, 20),
		},
		{
			ID: "prop-3", Number: "TEK-2024-003",
			ClientRef:   ClientRef{ClientID: "client-4", ClientName: "CodeCraft"},
			ProjectName: "SaaS Platform",
			Description: "Yeni SaaS platformu geliştirme teklifi.",
			Amount:      350000, Status: ProposalSent, ValidUntil: day(2024, 9, 30),
			Items: []ProposalItem{
				{ID: "i1", Description: "Mimari Tasarım", Quantity: 1, UnitPrice: 50000, Total: 50000},
				{ID: "i2", Description: "Backend Geliştirme", Quantity: 1, UnitPrice: 150000, Total: 150000},
				{ID: "i3", Description: "Frontend Geliştirme", Quantity: 1, UnitPrice: 100000, Total: 100000},
				{ID: "i4", Description: "DevOps & Deployment", Quantity: 1, UnitPrice: 50000, Total: 50000},
			},
			CreatedAt: day(2024, 8, 1),
		},
		{
			ID: "prop-4", Number: "TEK-2024-004",
			ClientRef:   ClientRef{ClientID: "client-1", ClientName: "ACME Inc."},
			ProjectName: "Bakım ve Destek Paketi",
			Description: "Yıllık bakım ve teknik destek hizmeti teklifi.",
			Amount:      48000, Status: ProposalDraft, ValidUntil: day(2024, 10, 15),
			Items: []ProposalItem{
				{ID: "i1", Description: "Aylık Bakım", Quantity: 12, UnitPrice: 3000, Total: 36000},
				{ID: "i2", Description: "Acil Destek Kredisi", Quantity: 1, UnitPrice: 12000, Total: 12000},
			},
			CreatedAt: day(2024, 8, 10),
		},
		{
			ID: "prop-5", Number: "TEK-2024-005",
			ClientRef:   ClientRef{ClientID: "client-5", ClientName: "Digital Nexus"},
			ProjectName: "Veri Analitik Platformu",
			Description: "Özelleştirilmiş veri analitik ve raporlama platformu.",
			Amount:      280000, Status: ProposalRejected, ValidUntil: day(2024, 8, 1),
			Items: []ProposalItem{
				{ID: "i1", Description: "Veri Modelleme", Quantity: 1, UnitPrice: 40000, Total: 40000},
				{ID: "i2", Description: "Dashboard Geliştirme", Quantity: 1, UnitPrice: 120000, Total: 120000},
				{ID: "i3", Description: "Entegrasyonlar", Quantity: 1, UnitPrice: 80000, Total: 80000},
				{ID: "i4", Description: "Eğitim", Quantity: 1, UnitPrice: 40000, Total: 40000},
			},
			CreatedAt: day(2024, 7, 15),
		},
	}
}

func SeedContracts() []Contract {
	return []Contract{
		{
			ID: "cont-1", Number: "SOZ-2024-001", ProjectID: "proj-1", ProjectName: "E-Ticaret Platformu",
			ClientRef: ClientRef{ClientID: "client-1", ClientName: "ACME Inc."},
			Status:    ContractSigned, Content: "E-Ticaret Platformu Geliştirme Sözleşmesi...",
			SignedAt:  ptr(day(2024, 5, 20)), CreatedAt: day(2024, 5, 15),
		},
		{
			ID: "cont-2", Number: "SOZ-2024-002", ProjectID: "proj-2", ProjectName: "Mobil Uygulama",
			ClientRef: ClientRef{ClientID: "client-2", ClientName: "TechFlow"},
			Status:    ContractSigned, Content: "Mobil Uygulama Geliştirme Sözleşmesi...",
			SignedAt:  ptr(day(2024, 7, 25)), CreatedAt: day(2024, 7, 20),
		},
		{
			ID: "cont-3", Number: "SOZ-2024-003", ProjectID: "proj-4", ProjectName: "Web Sitesi Yenileme",
			ClientRef: ClientRef{ClientID: "client-3", ClientName: "Global Union"},
			Status:    ContractSigned, Content: "Web Sitesi Yenileme Sözleşmesi...",
			SignedAt:  ptr(day(2024, 6, 28)), CreatedAt: day(2024, 6, 25),
		},
		{
			ID: "cont-4", Number: "SOZ-2024-004", ProjectID: "proj-5", ProjectName: "API Entegrasyonu",
			ClientRef: ClientRef{ClientID: "client-5", ClientName: "Digital Nexus"},
			Status:    ContractPendingSignature, Content: "API Entegrasyonu Sözleşmesi...",
			CreatedAt: day(2024, 7, 12),
		},
	}
}

func SeedShowcases() []Showcase {
	return []Showcase{
		{
			ID: "showcase-1", ProjectID: "proj-1", Title: "E-Ticaret Platformu - Teklif Detayları",
			Introduction: "ACME Inc. için hazırlanan kapsamlı e-ticaret platformu projesi teklifi.",
			Items: []ShowcaseItem{
				{ID: "si-1", Name: "Ürün Yönetim Modülü", Description: "Kategori yönetimi, varyant desteği, stok takibi", Quantity: 1, UnitPrice: 25000, Category: CategoryFeature},
				{ID: "si-2", Name: "Sepet ve Ödeme Sistemi", Description: "Çoklu ödeme entegrasyonu, kupon sistemi", Quantity: 1, UnitPrice: 35000, Category: CategoryFeature},
				{ID: "si-3", Name: "Admin Paneli", Description: "Sipariş ve müşteri yönetimi, raporlama", Quantity: 1, UnitPrice: 30000, Category: CategoryFeature},
				{ID: "si-4", Name: "Responsive Tasarım", Description: "Mobil uyumlu, SEO dostu frontend", Quantity: 1, UnitPrice: 20000, Category: CategoryFeature},
				{ID: "si-5", Name: "API Geliştirme", Description: "RESTful API ve dokümantasyon", Quantity: 1, UnitPrice: 25000, Category: CategoryService},
				{ID: "si-6", Name: "6 Ay Teknik Destek", Description: "Bug fix, güvenlik güncellemeleri", Quantity: 6, UnitPrice: 2500, Category: CategorySupport},
			},
			TotalAmount: 150000, FinalAmount: 150000,
			Notes:  "Proje tamamlandıktan sonra 6 ay ücretsiz teknik destek dahildir.",
			Status: ShowcaseSent, SentAt: ptr(day(2024, 6, 1)), ViewedAt: ptr(day(2024, 6, 2)),
			CreatedAt: day(2024, 5, 28), UpdatedAt: day(2024, 5, 30),
		},
		{
			ID: "showcase-2", ProjectID: "proj-2", Title: "Mobil Uygulama - Proje Teklifi",
			Introduction: "TechFlow için tasarlanan iOS ve Android mobil uygulama projesi.",
			Items: []ShowcaseItem{
				{ID: "si-1", Name: "UI/UX Tasarım", Description: "Wireframe, tasarım, prototip", Quantity: 1, UnitPrice: 30000, Category: CategoryFeature},
				{ID: "si-2", Name: "iOS Uygulama Geliştirme", Description: "Swift ile native iOS uygulaması", Quantity: 1, UnitPrice: 75000, Category: CategoryFeature},
				{ID: "si-3", Name: "Android Uygulama Geliştirme", Description: "Kotlin ile native Android uygulaması", Quantity: 1, UnitPrice: 75000, Category: CategoryFeature},
				{ID: "si-4", Name: "Test ve QA", Description: "Otomatik ve manuel testler", Quantity: 1, UnitPrice: 20000, Category: CategoryService},
			},
			TotalAmount: 200000, FinalAmount: 200000,
			Notes:  "Yayın sonrası 3 ay ücretsiz hata düzeltme desteği verilecektir.",
			Status: ShowcaseAccepted, SentAt: ptr(day(2024, 7, 5)), ViewedAt: ptr(day(2024, 7, 6)), RespondedAt: ptr(day(2024, 7, 10)),
			CreatedAt: day(2024, 7, 1), UpdatedAt: day(2024, 7, 10),
		},
		{
			ID: "showcase-3", ProjectID: "proj-5", Title: "API Entegrasyonu - Proje Detayları",
			Introduction: "Digital Nexus için hazırlanan API entegrasyon projesi detayları.",
			Items: []ShowcaseItem{
				{ID: "si-1", Name: "API Analiz ve Planlama", Description: "Sistem analizi, entegrasyon stratejisi", Quantity: 1, UnitPrice: 15000, Category: CategoryService},
				{ID: "si-2", Name: "Ödeme Sistemleri Entegrasyonu", Description: "Stripe, PayPal, iyzico entegrasyonları", Quantity: 3, UnitPrice: 10000, Category: CategoryFeature},
				{ID: "si-3", Name: "CRM Entegrasyonu", Description: "Salesforce, HubSpot bağlantısı", Quantity: 1, UnitPrice: 20000, Category: CategoryFeature},
				{ID: "si-4", Name: "Webhook ve Otomasyon", Description: "Event-driven mimari, otomatik iş akışları", Quantity: 1, UnitPrice: 15000, Category: CategoryFeature},
			},
			TotalAmount: 80000, Discount: 5000, FinalAmount: 75000,
			Notes:  "Erken teslim için %5 indirim uygulanmıştır.",
			Status: ShowcaseDraft,
			CreatedAt: day(2024, 7, 10), UpdatedAt: day(2024, 7, 12),
		},
	}
}
