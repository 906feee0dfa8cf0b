package assistant

import (
	"math/rand"
	"strings"
)

// rule, mesajda aranan anahtar kelimeler ile verilebilecek yanıt havuzunu
// eşler. İlk eşleşen kural kazanır.
type rule struct {
	keywords  []string
	responses []string
}

var rules = []rule{
	{
		keywords: []string{"merhaba", "selam", "günaydın"},
		responses: []string{
			"Merhaba! Bugün çalışmana nasıl yardımcı olabilirim?",
			"Selam! Hazırsan bugünün planına bakalım.",
		},
	},
	{
		keywords: []string{"program", "plan", "takvim"},
		responses: []string{
			"Program ekranından gün ve saat aralığını seçerek yeni bir çalışma programı oluşturabilirsin.",
			"Haftalık programını en fazla 7 gün olacak şekilde planlayabilirsin. Kısa molalar vermeyi unutma!",
		},
	},
	{
		keywords: []string{"deneme", "net", "puan"},
		responses: []string{
			"Deneme sonuçlarını kaydedersen netlerindeki değişimi birlikte takip edebiliriz.",
			"Net hesabında dört yanlış bir doğruyu götürür. Önemli olan düzenli artış!",
		},
	},
	{
		keywords: []string{"ödev", "eksik"},
		responses: []string{
			"Ödev listeni kontrol ettin mi? Programdaki tüm dersleri tamamlayınca o günün ödevi de işaretlenir.",
		},
	},
	{
		keywords: []string{"motivasyon", "yorgun", "bırak", "sıkıldım"},
		responses: []string{
			"Yorulman çok normal. Kısa bir mola ver, sonra kaldığın yerden devam ederiz.",
			"Unutma, küçük ama düzenli adımlar büyük hedeflere götürür. Sen yapabilirsin!",
			"Bugün zor geçiyorsa yarın için küçük bir hedef belirleyelim mi?",
		},
	},
	{
		keywords: []string{"sınav", "kaç gün", "tarih"},
		responses: []string{
			"Geri sayım ekranından sınavına kaç gün kaldığını görebilirsin.",
		},
	},
}

var fallbackResponses = []string{
	"Bunu tam anlayamadım. Programın, denemelerin ya da ödevlerin hakkında soru sorabilirsin.",
	"Sana daha iyi yardımcı olabilmem için biraz daha açar mısın?",
}

// Assistant, hazır yanıtlı sohbet asistanıdır. Yanıtlar anahtar kelime
// eşleşmesiyle seçilir; hiçbir kural eşleşmezse genel bir yanıt döner.
type Assistant struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Assistant {
	return &Assistant{rng: rng}
}

// Reply, kullanıcının mesajına verilecek hazır yanıtı seçer.
func (a *Assistant) Reply(message string) string {
	message = strings.ToLower(message)

	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(message, keyword) {
				return r.responses[a.rng.Intn(len(r.responses))]
			}
		}
	}

	return fallbackResponses[a.rng.Intn(len(fallbackResponses))]
}
