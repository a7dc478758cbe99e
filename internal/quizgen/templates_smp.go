package quizgen

import (
	"fmt"

	"kuispintar/internal/domain"
)

func init() {
	Register(domain.LevelSMP, domain.SubjectMatematika, smpMatematikaTemplates())
	Register(domain.LevelSMP, domain.SubjectIPA, smpIPATemplates())
	Register(domain.LevelSMP, domain.SubjectIPS, smpIPSTemplates())
	Register(domain.LevelSMP, domain.SubjectBahasaInggris, smpBahasaInggrisTemplates())
}

// pythagoreanTriples are the (a, b, c) side lengths used by the
// right-triangle template. Restricting to known triples keeps the
// answer an integer.
var pythagoreanTriples = [][3]int{
	{3, 4, 5}, {6, 8, 10}, {5, 12, 13}, {9, 12, 15}, {8, 15, 17}, {7, 24, 25},
}

func smpMatematikaTemplates() []Template {
	return []Template{
		{
			Name: "smp-mat-persamaan-linear",
			Generate: func(r Rand) TemplateResult {
				a := between(r, 2, 9)
				x := between(r, 2, 12)
				b := between(r, 1, 20)
				c := a*x + b
				return TemplateResult{
					Text:          fmt.Sprintf("Jika %dx + %d = %d, berapakah nilai x?", a, b, c),
					Explanation:   fmt.Sprintf("%dx = %d - %d = %d, sehingga x = %d : %d = %d", a, c, b, a*x, a*x, a, x),
					SignatureBase: fmt.Sprintf("smp-mat-linear:%d:%d:%d", a, b, c),
					Numeric:       float64(x),
					IsNumeric:     true,
					Spread:        3,
				}
			},
		},
		{
			Name: "smp-mat-pythagoras",
			Generate: func(r Rand) TemplateResult {
				t := pick(r, pythagoreanTriples)
				a, b, c := t[0], t[1], t[2]
				return TemplateResult{
					Text:          fmt.Sprintf("Sebuah segitiga siku-siku memiliki sisi tegak %d cm dan %d cm. Berapa cm panjang sisi miringnya?", a, b),
					Explanation:   fmt.Sprintf("Sisi miring = √(%d² + %d²) = √%d = %d cm", a, b, c*c, c),
					SignatureBase: fmt.Sprintf("smp-mat-pythagoras:%d:%d", a, b),
					Numeric:       float64(c),
					IsNumeric:     true,
					Spread:        4,
					Diagram: &domain.DiagramSpec{
						Kind:   "right_triangle",
						Params: map[string]float64{"a": float64(a), "b": float64(b)},
					},
				}
			},
		},
		{
			Name: "smp-mat-persentase",
			Generate: func(r Rand) TemplateResult {
				percentages := []int{10, 20, 25, 50, 75}
				p := pick(r, percentages)
				n := 20 * between(r, 2, 20)
				ans := n * p / 100
				return TemplateResult{
					Text:          fmt.Sprintf("Berapakah %d%% dari %d?", p, n),
					Explanation:   fmt.Sprintf("%d%% × %d = %d × %d / 100 = %d", p, n, p, n, ans),
					SignatureBase: fmt.Sprintf("smp-mat-persen:%d:%d", p, n),
					Numeric:       float64(ans),
					IsNumeric:     true,
				}
			},
		},
		{
			Name: "smp-mat-perpangkatan",
			Generate: func(r Rand) TemplateResult {
				base := between(r, 2, 6)
				exp := between(r, 2, 4)
				ans := 1
				for i := 0; i < exp; i++ {
					ans *= base
				}
				return TemplateResult{
					Text:          fmt.Sprintf("Berapakah nilai dari %d pangkat %d?", base, exp),
					Explanation:   fmt.Sprintf("%d^%d berarti %d dikalikan dirinya sendiri %d kali, hasilnya %d", base, exp, base, exp, ans),
					SignatureBase: fmt.Sprintf("smp-mat-pangkat:%d:%d", base, exp),
					Numeric:       float64(ans),
					IsNumeric:     true,
				}
			},
		},
		{
			Name: "smp-mat-luas-lingkaran",
			Generate: func(r Rand) TemplateResult {
				radii := []int{7, 14, 21, 28}
				rad := pick(r, radii)
				ans := 22 * rad * rad / 7
				return TemplateResult{
					Text:          fmt.Sprintf("Berapa cm² luas lingkaran dengan jari-jari %d cm? (π = 22/7)", rad),
					Explanation:   fmt.Sprintf("Luas = π × r² = 22/7 × %d × %d = %d cm²", rad, rad, ans),
					SignatureBase: fmt.Sprintf("smp-mat-luas-lingkaran:%d", rad),
					Numeric:       float64(ans),
					IsNumeric:     true,
					Diagram: &domain.DiagramSpec{
						Kind:   "circle",
						Params: map[string]float64{"radius": float64(rad)},
					},
				}
			},
		},
	}
}

func smpIPATemplates() []Template {
	wujudBank := []bankEntry{
		{
			question:    "Perubahan wujud dari cair menjadi gas disebut...",
			answer:      "Menguap",
			distractors: [3]string{"Mengembun", "Membeku", "Menyublim"},
			explanation: "Menguap adalah perubahan wujud cair menjadi gas, contohnya air yang dipanaskan.",
		},
		{
			question:    "Perubahan wujud dari gas menjadi cair disebut...",
			answer:      "Mengembun",
			distractors: [3]string{"Menguap", "Mencair", "Mengkristal"},
			explanation: "Mengembun terjadi saat uap air menjadi titik-titik air, contohnya embun pagi.",
		},
		{
			question:    "Perubahan wujud dari padat langsung menjadi gas disebut...",
			answer:      "Menyublim",
			distractors: [3]string{"Mencair", "Menguap", "Membeku"},
			explanation: "Menyublim contohnya kapur barus yang lama-kelamaan habis.",
		},
		{
			question:    "Perubahan wujud dari cair menjadi padat disebut...",
			answer:      "Membeku",
			distractors: [3]string{"Mencair", "Mengembun", "Menguap"},
			explanation: "Membeku contohnya air yang dimasukkan ke dalam freezer menjadi es.",
		},
	}

	return []Template{
		{
			Name: "smp-ipa-kecepatan",
			Generate: func(r Rand) TemplateResult {
				v := 10 * between(r, 2, 8)
				t := between(r, 2, 5)
				d := v * t
				return TemplateResult{
					Text:          fmt.Sprintf("Sebuah mobil menempuh jarak %d km dalam waktu %d jam. Berapa km/jam kecepatan rata-ratanya?", d, t),
					Explanation:   fmt.Sprintf("Kecepatan = jarak : waktu = %d : %d = %d km/jam", d, t, v),
					SignatureBase: fmt.Sprintf("smp-ipa-kecepatan:%d:%d", d, t),
					Numeric:       float64(v),
					IsNumeric:     true,
					Spread:        10,
					Diagram: &domain.DiagramSpec{
						Kind:   "motion",
						Params: map[string]float64{"distance": float64(d), "time": float64(t)},
					},
				}
			},
		},
		{
			Name: "smp-ipa-massa-jenis",
			Generate: func(r Rand) TemplateResult {
				rho := between(r, 1, 8)
				vol := between(r, 2, 10)
				m := rho * vol
				return TemplateResult{
					Text:          fmt.Sprintf("Sebuah benda bermassa %d gram memiliki volume %d cm³. Berapa g/cm³ massa jenisnya?", m, vol),
					Explanation:   fmt.Sprintf("Massa jenis = massa : volume = %d : %d = %d g/cm³", m, vol, rho),
					SignatureBase: fmt.Sprintf("smp-ipa-massa-jenis:%d:%d", m, vol),
					Numeric:       float64(rho),
					IsNumeric:     true,
					Spread:        3,
				}
			},
		},
		bankTemplate("smp-ipa-wujud", "smp-ipa-wujud", wujudBank),
	}
}

func smpIPSTemplates() []Template {
	ibuKotaBank := []bankEntry{
		{
			question:    "Ibu kota provinsi Jawa Barat adalah...",
			answer:      "Bandung",
			distractors: [3]string{"Semarang", "Surabaya", "Serang"},
			explanation: "Bandung adalah ibu kota provinsi Jawa Barat.",
		},
		{
			question:    "Ibu kota provinsi Jawa Timur adalah...",
			answer:      "Surabaya",
			distractors: [3]string{"Malang", "Semarang", "Yogyakarta"},
			explanation: "Surabaya adalah ibu kota provinsi Jawa Timur.",
		},
		{
			question:    "Ibu kota provinsi Sumatera Utara adalah...",
			answer:      "Medan",
			distractors: [3]string{"Padang", "Palembang", "Pekanbaru"},
			explanation: "Medan adalah ibu kota provinsi Sumatera Utara.",
		},
		{
			question:    "Ibu kota provinsi Sulawesi Selatan adalah...",
			answer:      "Makassar",
			distractors: [3]string{"Manado", "Palu", "Kendari"},
			explanation: "Makassar adalah ibu kota provinsi Sulawesi Selatan.",
		},
	}

	sejarahBank := []bankEntry{
		{
			question:    "Proklamasi kemerdekaan Indonesia dibacakan pada tanggal...",
			answer:      "17 Agustus 1945",
			distractors: [3]string{"17 Agustus 1944", "1 Juni 1945", "28 Oktober 1928"},
			explanation: "Proklamasi dibacakan oleh Soekarno pada 17 Agustus 1945.",
		},
		{
			question:    "Sumpah Pemuda diikrarkan pada tahun...",
			answer:      "1928",
			distractors: [3]string{"1908", "1945", "1950"},
			explanation: "Sumpah Pemuda diikrarkan pada Kongres Pemuda II, 28 Oktober 1928.",
		},
		{
			question:    "Organisasi Budi Utomo berdiri pada tahun...",
			answer:      "1908",
			distractors: [3]string{"1928", "1912", "1945"},
			explanation: "Budi Utomo berdiri 20 Mei 1908 dan diperingati sebagai Hari Kebangkitan Nasional.",
		},
	}

	geografiBank := []bankEntry{
		{
			question:    "Gunung tertinggi di Indonesia adalah...",
			answer:      "Puncak Jaya",
			distractors: [3]string{"Gunung Semeru", "Gunung Kerinci", "Gunung Rinjani"},
			explanation: "Puncak Jaya di Papua adalah puncak tertinggi di Indonesia, sekitar 4.884 meter.",
		},
		{
			question:    "Pulau terbesar di Indonesia adalah...",
			answer:      "Kalimantan",
			distractors: [3]string{"Sumatera", "Jawa", "Sulawesi"},
			explanation: "Kalimantan adalah pulau terbesar yang sebagian besar wilayahnya masuk Indonesia.",
		},
		{
			question:    "Garis khayal yang membagi bumi menjadi belahan utara dan selatan disebut...",
			answer:      "Garis khatulistiwa",
			distractors: [3]string{"Garis bujur", "Garis Wallace", "Garis tanggal internasional"},
			explanation: "Garis khatulistiwa melintasi Indonesia, antara lain kota Pontianak.",
		},
	}

	return []Template{
		bankTemplate("smp-ips-ibu-kota", "smp-ips-ibu-kota", ibuKotaBank),
		bankTemplate("smp-ips-sejarah", "smp-ips-sejarah", sejarahBank),
		bankTemplate("smp-ips-geografi", "smp-ips-geografi", geografiBank),
	}
}

func smpBahasaInggrisTemplates() []Template {
	pastTenseBank := []bankEntry{
		{
			question:    "What is the past tense of \"go\"?",
			answer:      "went",
			distractors: [3]string{"goed", "gone", "going"},
			explanation: "\"Go\" is an irregular verb; its past tense is \"went\".",
		},
		{
			question:    "What is the past tense of \"eat\"?",
			answer:      "ate",
			distractors: [3]string{"eated", "eaten", "eating"},
			explanation: "\"Eat\" is an irregular verb; its past tense is \"ate\".",
		},
		{
			question:    "What is the past tense of \"write\"?",
			answer:      "wrote",
			distractors: [3]string{"writed", "written", "writing"},
			explanation: "\"Write\" is an irregular verb; its past tense is \"wrote\".",
		},
		{
			question:    "What is the past tense of \"buy\"?",
			answer:      "bought",
			distractors: [3]string{"buyed", "brought", "buying"},
			explanation: "\"Buy\" is an irregular verb; its past tense is \"bought\".",
		},
	}

	vocabularyBank := []bankEntry{
		{
			question:    "\"Perpustakaan\" in English is...",
			answer:      "Library",
			distractors: [3]string{"Laboratory", "Bookstore", "Classroom"},
			explanation: "Library means perpustakaan, a place to read and borrow books.",
		},
		{
			question:    "The opposite of \"expensive\" is...",
			answer:      "cheap",
			distractors: [3]string{"costly", "pricey", "valuable"},
			explanation: "Cheap is the antonym of expensive.",
		},
		{
			question:    "\"Guru\" in English is...",
			answer:      "Teacher",
			distractors: [3]string{"Student", "Doctor", "Farmer"},
			explanation: "Teacher means guru, a person who teaches at school.",
		},
	}

	pluralBank := []bankEntry{
		{
			question:    "What is the plural form of \"child\"?",
			answer:      "children",
			distractors: [3]string{"childs", "childes", "childrens"},
			explanation: "\"Child\" has the irregular plural \"children\".",
		},
		{
			question:    "What is the plural form of \"mouse\"?",
			answer:      "mice",
			distractors: [3]string{"mouses", "mousies", "meese"},
			explanation: "\"Mouse\" has the irregular plural \"mice\".",
		},
		{
			question:    "What is the plural form of \"foot\"?",
			answer:      "feet",
			distractors: [3]string{"foots", "footes", "feets"},
			explanation: "\"Foot\" has the irregular plural \"feet\".",
		},
	}

	return []Template{
		bankTemplate("smp-big-past-tense", "smp-big-past-tense", pastTenseBank),
		bankTemplate("smp-big-vocabulary", "smp-big-vocabulary", vocabularyBank),
		bankTemplate("smp-big-plural", "smp-big-plural", pluralBank),
	}
}
