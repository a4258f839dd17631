package roteirizador

import (
	"math"
)

const raioTerraKm = 6371.0

// Haversine devolve a distância de círculo máximo em km entre duas coordenadas.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	φ1 := lat1 * math.Pi / 180
	φ2 := lat2 * math.Pi / 180
	Δφ := (lat2 - lat1) * math.Pi / 180
	Δλ := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) +
		math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return raioTerraKm * c
}

type cluster struct {
	paradas  []Parada
	lat, lng float64
}

func (cl *cluster) adicionar(p Parada) {
	cl.paradas = append(cl.paradas, p)
	var somaLat, somaLng float64
	for _, q := range cl.paradas {
		somaLat += q.Latitude
		somaLng += q.Longitude
	}
	cl.lat = somaLat / float64(len(cl.paradas))
	cl.lng = somaLng / float64(len(cl.paradas))
}

// agruparParadas forma pontos de embarque puxando sempre a parada livre
// geograficamente mais próxima do centroide do cluster aberto, até estourar
// a distância máxima de caminhada ou o número máximo de paradas. Empates de
// distância são resolvidos pela ordem de entrada.
func agruparParadas(paradas []Parada, maxDistancia float64, maxParadas int) []cluster {
	usada := make([]bool, len(paradas))
	var clusters []cluster

	for seed := 0; seed < len(paradas); seed++ {
		if usada[seed] {
			continue
		}
		var cl cluster
		cl.adicionar(paradas[seed])
		usada[seed] = true

		for len(cl.paradas) < maxParadas {
			maisProxima := -1
			menor := math.MaxFloat64
			for i, p := range paradas {
				if usada[i] {
					continue
				}
				if d := Haversine(cl.lat, cl.lng, p.Latitude, p.Longitude); d < menor {
					menor = d
					maisProxima = i
				}
			}
			if maisProxima < 0 || menor > maxDistancia {
				break
			}
			cl.adicionar(paradas[maisProxima])
			usada[maisProxima] = true
		}
		clusters = append(clusters, cl)
	}
	return clusters
}

// ordenarClusters percorre os pontos de embarque por vizinho mais próximo a
// partir do primeiro cluster formado. Cada cluster é visitado exatamente uma
// vez; um cluster fechado nunca é reaberto.
func ordenarClusters(clusters []cluster) []cluster {
	if len(clusters) <= 1 {
		return clusters
	}

	ordenados := make([]cluster, 0, len(clusters))
	visitado := make([]bool, len(clusters))

	atual := 0
	visitado[0] = true
	ordenados = append(ordenados, clusters[0])

	for len(ordenados) < len(clusters) {
		proximo := -1
		menor := math.MaxFloat64
		for i := range clusters {
			if visitado[i] {
				continue
			}
			d := Haversine(clusters[atual].lat, clusters[atual].lng, clusters[i].lat, clusters[i].lng)
			if d < menor {
				menor = d
				proximo = i
			}
		}
		visitado[proximo] = true
		ordenados = append(ordenados, clusters[proximo])
		atual = proximo
	}
	return ordenados
}

// distanciaOriginal soma as pernas endereço a endereço antes do agrupamento.
// Pernas fornecidas pela fonte primária são usadas como estão; na ausência
// delas a distância é recalculada por Haversine.
func distanciaOriginal(paradas []Parada) float64 {
	if len(paradas) < 2 {
		return 0
	}

	informadas := true
	for _, p := range paradas[1:] {
		if p.DistanciaAnterior <= 0 {
			informadas = false
			break
		}
	}

	total := 0.0
	if informadas {
		for _, p := range paradas[1:] {
			total += p.DistanciaAnterior
		}
		return total
	}

	for i := 1; i < len(paradas); i++ {
		total += Haversine(paradas[i-1].Latitude, paradas[i-1].Longitude,
			paradas[i].Latitude, paradas[i].Longitude)
	}
	return total
}

func calcularEconomia(original, otimizada float64) (economia, percentual float64) {
	economia = original - otimizada
	if original == 0 {
		return economia, 0
	}
	return economia, economia / original * 100
}
