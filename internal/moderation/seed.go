package moderation

import "organizerConsole/internal/models"

func seedReports() []models.Report {
	return []models.Report{
		{ID: 1, Type: "Yorum Şikayeti", User: "Ahmet K.", Content: "Bu etkinlik hakkında yanıltıcı bilgi veriliyor, bilet fiyatları farklı.", Date: "2 saat önce", Status: models.ReportPending},
		{ID: 2, Type: "Etkinlik Onayı", User: "Mehmet S.", Content: "Yaz Sonu Partisi 2024 - Etkinlik onayı bekliyor.", Date: "5 saat önce", Status: models.ReportPending},
		{ID: 3, Type: "Profil Şikayeti", User: "Ayşe Y.", Content: "Uygunsuz profil fotoğrafı bildirimi.", Date: "1 gün önce", Status: models.ReportReviewed},
		{ID: 4, Type: "Spam Bildirimi", User: "Canan T.", Content: "Sürekli aynı mesajı gönderiyor.", Date: "2 gün önce", Status: models.ReportPending},
	}
}

// demoChatGroups stand in when the remote service has no chat rooms.
func demoChatGroups() []models.ChatGroup {
	return []models.ChatGroup{
		{ID: "1", Name: "Neon Festivali 2024 (Demo)", Online: 142, Total: 1200, Status: models.ChatActive, LastActivity: "1 dk önce"},
		{ID: "2", Name: "Teknoloji Zirvesi (Demo)", Online: 85, Total: 850, Status: models.ChatActive, LastActivity: "5 dk önce"},
	}
}

func seedBlockedWords() []string {
	return []string{"dolandırıcı", "fake", "iptal"}
}

func defaultAutoMod() models.AutoModSettings {
	return models.AutoModSettings{
		SpamProtection: true,
		SlowMode:       false,
		MediaFilter:    true,
	}
}
