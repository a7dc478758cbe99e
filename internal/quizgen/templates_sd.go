package quizgen

import (
	"fmt"

	"kuispintar/internal/domain"
)

func init() {
	Register(domain.LevelSD, domain.SubjectMatematika, sdMatematikaTemplates())
	Register(domain.LevelSD, domain.SubjectIPA, sdIPATemplates())
	Register(domain.LevelSD, domain.SubjectBahasaIndonesia, sdBahasaIndonesiaTemplates())
}

// sdMatematikaTemplates is also the default fallback catalog for
// unregistered level/subject pairs.
func sdMatematikaTemplates() []Template {
	return []Template{
		{
			Name: "sd-mat-penjumlahan",
			Generate: func(r Rand) TemplateResult {
				a := between(r, 11, 99)
				b := between(r, 11, 99)
				return TemplateResult{
					Text:          fmt.Sprintf("Berapakah hasil dari %d + %d?", a, b),
					Explanation:   fmt.Sprintf("%d + %d = %d", a, b, a+b),
					SignatureBase: fmt.Sprintf("sd-mat-tambah:%d:%d", a, b),
					Numeric:       float64(a + b),
					IsNumeric:     true,
				}
			},
		},
		{
			Name: "sd-mat-pengurangan",
			Generate: func(r Rand) TemplateResult {
				a := between(r, 50, 99)
				b := between(r, 10, a-10)
				return TemplateResult{
					Text:          fmt.Sprintf("Berapakah hasil dari %d - %d?", a, b),
					Explanation:   fmt.Sprintf("%d - %d = %d", a, b, a-b),
					SignatureBase: fmt.Sprintf("sd-mat-kurang:%d:%d", a, b),
					Numeric:       float64(a - b),
					IsNumeric:     true,
				}
			},
		},
		{
			Name: "sd-mat-perkalian",
			Generate: func(r Rand) TemplateResult {
				a := between(r, 2, 12)
				b := between(r, 2, 12)
				return TemplateResult{
					Text:          fmt.Sprintf("Berapakah hasil dari %d × %d?", a, b),
					Explanation:   fmt.Sprintf("%d × %d = %d", a, b, a*b),
					SignatureBase: fmt.Sprintf("sd-mat-kali:%d:%d", a, b),
					Numeric:       float64(a * b),
					IsNumeric:     true,
					Spread:        5,
				}
			},
		},
		{
			Name: "sd-mat-pembagian",
			Generate: func(r Rand) TemplateResult {
				b := between(r, 2, 12)
				q := between(r, 2, 12)
				a := b * q
				return TemplateResult{
					Text:          fmt.Sprintf("Berapakah hasil dari %d : %d?", a, b),
					Explanation:   fmt.Sprintf("%d : %d = %d karena %d × %d = %d", a, b, q, b, q, a),
					SignatureBase: fmt.Sprintf("sd-mat-bagi:%d:%d", a, b),
					Numeric:       float64(q),
					IsNumeric:     true,
					Spread:        3,
				}
			},
		},
		{
			Name: "sd-mat-keliling-persegi",
			Generate: func(r Rand) TemplateResult {
				s := between(r, 3, 20)
				return TemplateResult{
					Text:          fmt.Sprintf("Sebuah persegi memiliki sisi %d cm. Berapa cm keliling persegi tersebut?", s),
					Explanation:   fmt.Sprintf("Keliling persegi = 4 × sisi = 4 × %d = %d cm", s, 4*s),
					SignatureBase: fmt.Sprintf("sd-mat-keliling-persegi:%d", s),
					Numeric:       float64(4 * s),
					IsNumeric:     true,
					Spread:        4,
					Diagram: &domain.DiagramSpec{
						Kind:   "square",
						Params: map[string]float64{"side": float64(s)},
					},
				}
			},
		},
		{
			Name: "sd-mat-luas-persegi-panjang",
			Generate: func(r Rand) TemplateResult {
				p := between(r, 4, 15)
				l := between(r, 2, p-1)
				return TemplateResult{
					Text:          fmt.Sprintf("Sebuah persegi panjang memiliki panjang %d cm dan lebar %d cm. Berapa cm² luasnya?", p, l),
					Explanation:   fmt.Sprintf("Luas = panjang × lebar = %d × %d = %d cm²", p, l, p*l),
					SignatureBase: fmt.Sprintf("sd-mat-luas-pp:%d:%d", p, l),
					Numeric:       float64(p * l),
					IsNumeric:     true,
					Diagram: &domain.DiagramSpec{
						Kind:   "rectangle",
						Params: map[string]float64{"width": float64(p), "height": float64(l)},
					},
				}
			},
		},
	}
}

func sdIPATemplates() []Template {
	hewanBank := []bankEntry{
		{
			question:    "Hewan yang hanya memakan tumbuhan disebut...",
			answer:      "Herbivora",
			distractors: [3]string{"Karnivora", "Omnivora", "Insektivora"},
			explanation: "Herbivora adalah hewan pemakan tumbuhan, contohnya sapi dan kambing.",
		},
		{
			question:    "Hewan yang memakan daging hewan lain disebut...",
			answer:      "Karnivora",
			distractors: [3]string{"Herbivora", "Omnivora", "Frugivora"},
			explanation: "Karnivora adalah hewan pemakan daging, contohnya harimau dan elang.",
		},
		{
			question:    "Ayam memakan biji-bijian dan juga serangga, sehingga ayam termasuk...",
			answer:      "Omnivora",
			distractors: [3]string{"Herbivora", "Karnivora", "Insektivora"},
			explanation: "Omnivora adalah hewan pemakan segala, baik tumbuhan maupun hewan.",
		},
		{
			question:    "Perubahan bentuk tubuh hewan dari telur hingga dewasa disebut...",
			answer:      "Metamorfosis",
			distractors: [3]string{"Fotosintesis", "Adaptasi", "Reproduksi"},
			explanation: "Metamorfosis adalah perubahan bentuk tubuh secara bertahap, contohnya pada kupu-kupu.",
		},
		{
			question:    "Hewan yang bernapas dengan insang adalah...",
			answer:      "Ikan",
			distractors: [3]string{"Kucing", "Burung", "Kadal"},
			explanation: "Ikan bernapas dengan insang untuk mengambil oksigen dari air.",
		},
	}

	tumbuhanBank := []bankEntry{
		{
			question:    "Bagian tumbuhan yang berfungsi menyerap air dan zat hara dari tanah adalah...",
			answer:      "Akar",
			distractors: [3]string{"Daun", "Batang", "Bunga"},
			explanation: "Akar menyerap air dan zat hara, lalu menyalurkannya ke seluruh bagian tumbuhan.",
		},
		{
			question:    "Proses pembuatan makanan pada tumbuhan hijau disebut...",
			answer:      "Fotosintesis",
			distractors: [3]string{"Respirasi", "Penyerbukan", "Fermentasi"},
			explanation: "Fotosintesis terjadi di daun dengan bantuan cahaya matahari.",
		},
		{
			question:    "Bagian tumbuhan yang menjadi alat perkembangbiakan generatif adalah...",
			answer:      "Bunga",
			distractors: [3]string{"Akar", "Batang", "Daun"},
			explanation: "Bunga mengandung putik dan benang sari sebagai alat perkembangbiakan.",
		},
		{
			question:    "Zat hijau daun yang berperan dalam fotosintesis disebut...",
			answer:      "Klorofil",
			distractors: [3]string{"Karbohidrat", "Stomata", "Kloroplas"},
			explanation: "Klorofil menangkap energi cahaya matahari untuk fotosintesis.",
		},
	}

	tataSuryaBank := []bankEntry{
		{
			question:    "Planet terdekat dari Matahari adalah...",
			answer:      "Merkurius",
			distractors: [3]string{"Venus", "Bumi", "Mars"},
			explanation: "Urutan planet dari Matahari dimulai dari Merkurius.",
		},
		{
			question:    "Planet yang dijuluki planet merah adalah...",
			answer:      "Mars",
			distractors: [3]string{"Jupiter", "Venus", "Saturnus"},
			explanation: "Permukaan Mars tampak kemerahan karena mengandung besi oksida.",
		},
		{
			question:    "Satelit alami Bumi adalah...",
			answer:      "Bulan",
			distractors: [3]string{"Matahari", "Komet", "Asteroid"},
			explanation: "Bulan mengelilingi Bumi sebagai satu-satunya satelit alaminya.",
		},
		{
			question:    "Planet terbesar dalam tata surya adalah...",
			answer:      "Jupiter",
			distractors: [3]string{"Saturnus", "Neptunus", "Uranus"},
			explanation: "Jupiter adalah planet terbesar dengan diameter sekitar 11 kali diameter Bumi.",
		},
	}

	return []Template{
		bankTemplate("sd-ipa-hewan", "sd-ipa-hewan", hewanBank),
		bankTemplate("sd-ipa-tumbuhan", "sd-ipa-tumbuhan", tumbuhanBank),
		bankTemplate("sd-ipa-tata-surya", "sd-ipa-tata-surya", tataSuryaBank),
	}
}

func sdBahasaIndonesiaTemplates() []Template {
	sinonimBank := []bankEntry{
		{
			question:    "Sinonim dari kata \"pandai\" adalah...",
			answer:      "Cerdas",
			distractors: [3]string{"Malas", "Bodoh", "Lambat"},
			explanation: "Pandai dan cerdas memiliki makna yang sama.",
		},
		{
			question:    "Sinonim dari kata \"gembira\" adalah...",
			answer:      "Senang",
			distractors: [3]string{"Sedih", "Marah", "Takut"},
			explanation: "Gembira dan senang sama-sama menyatakan perasaan bahagia.",
		},
		{
			question:    "Sinonim dari kata \"rajin\" adalah...",
			answer:      "Tekun",
			distractors: [3]string{"Malas", "Lalai", "Ceroboh"},
			explanation: "Rajin dan tekun sama-sama berarti giat dalam bekerja atau belajar.",
		},
	}

	antonimBank := []bankEntry{
		{
			question:    "Antonim dari kata \"tinggi\" adalah...",
			answer:      "Rendah",
			distractors: [3]string{"Besar", "Panjang", "Luas"},
			explanation: "Antonim adalah lawan kata; lawan kata tinggi adalah rendah.",
		},
		{
			question:    "Antonim dari kata \"terang\" adalah...",
			answer:      "Gelap",
			distractors: [3]string{"Redup", "Silau", "Cerah"},
			explanation: "Lawan kata terang adalah gelap.",
		},
		{
			question:    "Antonim dari kata \"membeli\" adalah...",
			answer:      "Menjual",
			distractors: [3]string{"Menawar", "Membayar", "Memesan"},
			explanation: "Lawan kata membeli adalah menjual.",
		},
	}

	peribahasaBank := []bankEntry{
		{
			question:    "Arti peribahasa \"besar pasak daripada tiang\" adalah...",
			answer:      "Pengeluaran lebih besar daripada pendapatan",
			distractors: [3]string{"Rajin pangkal pandai", "Orang yang sombong", "Bekerja tanpa hasil"},
			explanation: "Peribahasa ini menggambarkan pengeluaran yang melebihi pendapatan.",
		},
		{
			question:    "Arti peribahasa \"air beriak tanda tak dalam\" adalah...",
			answer:      "Orang yang banyak bicara biasanya sedikit ilmunya",
			distractors: [3]string{"Orang pendiam itu bodoh", "Air sungai yang dangkal", "Orang yang suka menolong"},
			explanation: "Orang yang banyak bicara sering kali ilmunya tidak dalam.",
		},
		{
			question:    "Arti peribahasa \"berakit-rakit ke hulu, berenang-renang ke tepian\" adalah...",
			answer:      "Bersusah payah dahulu, bersenang-senang kemudian",
			distractors: [3]string{"Bermain air di sungai", "Bekerja sambil bermain", "Menunda pekerjaan"},
			explanation: "Peribahasa ini mengajarkan kerja keras dahulu agar menikmati hasilnya kemudian.",
		},
	}

	return []Template{
		bankTemplate("sd-bin-sinonim", "sd-bin-sinonim", sinonimBank),
		bankTemplate("sd-bin-antonim", "sd-bin-antonim", antonimBank),
		bankTemplate("sd-bin-peribahasa", "sd-bin-peribahasa", peribahasaBank),
	}
}
